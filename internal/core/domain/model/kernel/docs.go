// Package kernel contains shared value objects used across the domain model.
//
// It provides UUID for entity identity, Date for calendar dates without a
// time-of-day component, and YearMonth for monthly reporting periods. All
// value objects are immutable and validate themselves; the zero value of
// each is invalid and must be constructed through the provided factory
// functions.
package kernel
