package varstore

import "github.com/vk/gridnodes/internal/value"

// Op names the kind of mutation an Intent requests.
type Op string

const (
	OpSet    Op = "set"
	OpDelete Op = "delete"
	OpClear  Op = "clear"
)

// Intent is a requested store mutation. It is a closed set: Set, Delete and
// Clear are the only implementations.
type Intent interface {
	Op() Op
	intent()
}

// Set asks for Value to be written under Key.
type Set struct {
	Key   string
	Value value.Value
}

// Delete asks for Key to be removed. Existed records whether the key was
// present in the snapshot the node saw.
type Delete struct {
	Key     string
	Existed bool
}

// Clear asks for every entry to be removed. Count is the number of entries the
// node saw in its snapshot.
type Clear struct {
	Count int
}

func (Set) Op() Op    { return OpSet }
func (Delete) Op() Op { return OpDelete }
func (Clear) Op() Op  { return OpClear }

func (Set) intent()    {}
func (Delete) intent() {}
func (Clear) intent()  {}
