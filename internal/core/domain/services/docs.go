// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the service shop. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - BillingCalculator: A domain service that computes a service order's bill
//     from its completed labor and issued parts
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
