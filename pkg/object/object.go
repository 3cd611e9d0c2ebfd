// Package object holds map helpers.
package object

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// OmitKeys returns a copy of m without the given keys.
func OmitKeys[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	return lo.OmitByKeys(m, keys)
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
