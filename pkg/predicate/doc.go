// Package predicate holds the value checks shared by the rest of fnbox.
//
// IsNil defines the absence sentinel used by when.Wrap and when.All: a value
// is absent only when it is nil, never because it is a zero value. IsEmpty
// and IsFalsy are looser checks kept for the helpers that want them:
// - IsNil/IsDefined: nil interface or nil pointer, map, slice, chan, func
// - IsEmpty: nil, zero-length containers and strings, false, fieldless structs
// - IsFalsy: nil, false, numeric zero, NaN, empty string
package predicate
