// Package kernel provides core domain primitives shared by every aggregate in
// the service shop domain model. It implements fundamental building blocks
// following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Signature: A value object recording who signed a record and when
//   - Role and Principal: The authenticated actor threaded through every core operation
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
