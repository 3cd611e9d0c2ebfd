// Package when provides Box[T], an immutable optional value, and the tuple
// combinator that lifts several optional values into one Box.
//
// A Box is either Present(v) or Absent. Every operation returns a new Box and
// short-circuits once the chain is Absent, so callbacks never see a missing
// value:
// - Wrap/Some/None/FromPtr/FromPair: construct a Box
// - Map/FlatMap/Filter: transform while Present
// - Fold/GetOrElse/Get/Unpack: leave the Box
// - All/AllOf/Zip/Zip3: Present only when every input is Present
// - FromOption/ToOption: convert to and from samber/mo options
//
// Absence is decided by predicate.IsNil. Zero values such as 0, "" and false
// are Present.
package when
