// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the feed delivery system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentValidator: enforces the business rules of assigning a driver to a delivery
//   - DriverRecommender: selects the least loaded eligible driver for a delivery
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
