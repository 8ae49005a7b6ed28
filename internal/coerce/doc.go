// Package coerce holds the total conversion functions shared by the node
// catalog. Every function here accepts any value.Value, including nil, and
// returns a defined result; none of them can fail.
//
// String truthiness comes in two flavours that different node families rely
// on: ToBool accepts only "true", "1" and "yes" (case-insensitive), while
// ToBoolLoose accepts any non-empty string. They are kept apart on purpose.
package coerce
