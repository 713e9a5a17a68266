// Package analyzer turns recorded access statistics into per-field
// presence/usage grades and an optimization verdict.
//
// The two grades are independent axes: presence answers "is the field
// set", usage answers "is a set field's value actually consumed". A field
// can be likely present yet rarely used, which is the strongest signal
// for lazy materialization.
//
// All classification functions are total: any field with any (possibly
// absent) profile data grades to a defined value, and "no data" grades
// Default on both axes rather than erroring.
package analyzer
