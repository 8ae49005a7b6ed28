package flow

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/gridnodes/internal/ctxlog"
	"github.com/vk/gridnodes/internal/fsutil"
	"github.com/vk/gridnodes/internal/hclexpr"
	"github.com/vk/gridnodes/internal/value"
)

// fileRoot decodes the top-level blocks of one file.
type fileRoot struct {
	Vars  []*varsBlock `hcl:"vars,block"`
	Steps []*stepBlock `hcl:"step,block"`
}

type varsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type stepBlock struct {
	Type      string         `hcl:"type,label"`
	Name      string         `hcl:"name,label"`
	Inputs    hcl.Expression `hcl:"inputs,optional"`
	DeclRange hcl.Range      `hcl:",def_range"`
}

// Load parses every .hcl file under paths, in path order and then file name
// order, and returns the merged flow.
func Load(ctx context.Context, paths ...string) (*Flow, error) {
	logger := ctxlog.FromContext(ctx).With("component", "flow")
	logger.Debug("Flow loader started.", "path_count", len(paths))

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	f := &Flow{Vars: make(map[string]value.Value)}
	seen := make(map[string]*Step)
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, vb := range root.Vars {
			if err := decodeVars(vb, f.Vars); err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
		}
		for _, sb := range root.Steps {
			step, err := translateStep(sb, seen)
			if err != nil {
				return nil, err
			}
			seen[step.Name] = step
			f.Steps = append(f.Steps, step)
		}
	}

	logger.Debug("Flow loading complete.", "steps", len(f.Steps), "vars", len(f.Vars))
	return f, nil
}

func findHCLFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			add(p)
		}
	}
	return all, nil
}

func decodeVars(vb *varsBlock, into map[string]value.Value) error {
	attrs, diags := vb.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid vars block: %w", diags)
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	ectx := &hcl.EvalContext{Functions: Functions()}
	for _, name := range names {
		if _, dup := into[name]; dup {
			return fmt.Errorf("variable %q is declared more than once", name)
		}
		v, diags := attrs[name].Expr.Value(ectx)
		if diags.HasErrors() {
			return fmt.Errorf("invalid value for variable %q: %w", name, diags)
		}
		into[name] = value.FromCty(v)
	}
	return nil
}

func translateStep(sb *stepBlock, earlier map[string]*Step) (*Step, error) {
	if prev, dup := earlier[sb.Name]; dup {
		return nil, fmt.Errorf("%w: %q at %s, first declared at %s", ErrDuplicateStep, sb.Name, sb.DeclRange, prev.Range)
	}

	step := &Step{Type: sb.Type, Name: sb.Name, Range: sb.DeclRange}
	if !isExprDefined(sb.Inputs) {
		return step, nil
	}
	step.Inputs = sb.Inputs

	exprs := hclexpr.NewContainer(sb.Inputs)
	deps := make(map[string]struct{})
	for _, ref := range exprs.References() {
		root, attr, ok := hclexpr.RootAttr(ref)
		switch {
		case root == "var":
		case root == "step" && ok:
			if _, known := earlier[attr]; !known {
				return nil, fmt.Errorf("%w: step %q reads %s, which is not declared before it", ErrBadReference, sb.Name, hclexpr.TraversalKey(ref))
			}
			deps[attr] = struct{}{}
		default:
			return nil, fmt.Errorf("%w: step %q reads %s; only var.<key> and step.<name>.<key> are available", ErrBadReference, sb.Name, hclexpr.TraversalKey(ref))
		}
	}

	funcs := Functions()
	for _, name := range exprs.CalledFunctions() {
		if _, ok := funcs[name]; !ok {
			return nil, fmt.Errorf("%w: step %q calls unknown function %q", ErrBadReference, sb.Name, name)
		}
	}

	for name := range deps {
		step.DependsOn = append(step.DependsOn, name)
	}
	sort.Strings(step.DependsOn)
	return step, nil
}

// isExprDefined reports whether an optional attribute was actually written.
// gohcl fills omitted optional expressions with a zero-width placeholder.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}
