// Package kernel provides the value objects shared by the cargo domain model.
//
// The package includes:
//   - UUID: identity of aggregates such as ships
//   - Mass: a non-negative weight in kilograms with exact decimal arithmetic
//   - SerialNumber: the immutable identity of a container ("KON-G-1")
//   - Sequence: the counter containers draw their serial numbers from
//
// Value objects are immutable and validate themselves on construction, so a
// domain object holding one never has to re-check it.
package kernel
