// Package result provides Result[E, S], a value that is either an Err
// carrying E or an Ok carrying S.
//
// Failure is data, not a panic or a Go error. The only way to read a Result
// is Fold, which runs exactly one of its two handlers. There is deliberately
// no Map or FlatMap; chains go through nested folds or through a when.Box at
// the boundary:
// - Ok/Err: construct a Result
// - Fold: dispatch on the variant
// - Try: turn a (value, error) call into a Result
// - ToBox/FromBox: cross over to when.Box
// - ToEither/FromEither: cross over to samber/mo
package result
