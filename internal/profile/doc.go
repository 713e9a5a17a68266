// Package profile loads recorded field access profiles and answers the
// statistics queries the analyzer runs against them.
//
// A profile is a YAML snapshot recorded by an instrumented runtime: per
// message type (under its generated-code name), per field, how many
// accesses were sampled in each direction, how many of those found the
// field present, and how many value accesses happened at all.
package profile
