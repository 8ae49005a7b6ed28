// Package value defines the single dynamic data type that flows through every
// node: a closed, recursive union of null, boolean, number, string, list and
// object.
//
// The union is sealed. Only the six types declared here implement Value, so a
// type switch over them is exhaustive. A nil Value interface is treated as
// Null everywhere in this repository.
//
// Values are treated as immutable once constructed. Functions that derive a
// new composite value always allocate it; none of them writes into a List or
// Object it received.
package value
