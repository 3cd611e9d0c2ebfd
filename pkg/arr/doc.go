// Package arr holds stateless slice helpers. Every helper returns a new
// slice and never mutates its input.
//
// Most of them are thin wrappers over samber/lo with the edge cases pinned
// down (negative counts, out-of-range indexes). Helpers that may find
// nothing, such as Head, Last and LookupAt, return a when.Box.
package arr
