// Package habit defines the habit data model and the per-day scheduling
// rules evaluated against it.
//
// # Model
//
// A [Habit] carries a recurrence rule ([Frequency]), the ids of the habits it
// depends on (its prerequisites) and the set of days it was completed. A
// [Collection] is a snapshot of all habits a user owns; ids are unique
// within it.
//
// # Rules
//
// Two questions are answered per habit and day:
//
//   - [IsDue]: is the habit scheduled that day according to its rule?
//   - [IsPrerequisitesMet]: were all of its prerequisites completed that
//     same calendar day?
//
// Both are total: malformed input (nil habit, missing rule, unknown mode,
// prerequisite ids that match no habit) yields false rather than an error or
// a panic. The one exception is deliberate: a habit with no prerequisites
// is always unconstrained, so IsPrerequisitesMet returns true.
//
// Nothing in this package mutates a habit or a collection.
package habit
