// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds primitives that do not belong to any single aggregate:
// the UUID identity value object. These types are immutable, validated at
// construction, and safe for concurrent use.
package kernel
