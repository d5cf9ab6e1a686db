/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package model defines the core contracts that all dxdist value types MUST
// implement to ensure consistent validation, logging and identity across
// the module.
//
// Every value type (Distance, the SI and ImperialUS unit families) SHOULD
// implement the Model interface or its constituent parts (Validatable,
// Loggable, Identifiable, ZeroCheckable). These interfaces establish a
// common contract that enables generic operations such as ValidateAll and
// MustValidate and guarantees safety at compile time.
//
// All dxdist model types are immutable value types. Every operation returns
// a new value and no method mutates its receiver, so values are safe for
// concurrent use without synchronization.
//
// Unlike a general-purpose domain model, dxdist values are deliberately not
// serializable: there is no JSON or YAML form of a Distance or a unit.
package model

// Model is the root interface combining the contracts required for dxdist
// value types: Validatable ensures invariants hold, Loggable offers safe
// and full string representations, Identifiable supplies a canonical type
// name, and ZeroCheckable detects zero values.
//
// Example implementation:
//
//	type Fathom struct{}
//
//	func (Fathom) Validate() error   { return nil }
//	func (Fathom) TypeName() string  { return "Fathom" }
//	func (Fathom) IsZero() bool      { return false }
//	func (Fathom) Redacted() string  { return "fathom" }
//	func (Fathom) String() string    { return "fathom" }
//
//	var _ Model = Fathom{}  // Compile-time check
type Model interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST return nil if and only if the instance is fully valid. When
// validation fails, the returned error MUST describe what is invalid; prefer
// a *errors.ValidationError carrying the type name and the offending value.
//
// Validate MUST be fast, deterministic and free of side effects. It MUST NOT
// mutate the receiver.
//
// Enum-like types use Validate to reject values produced by numeric casts
// outside the defined constant set (for example, unit.SI(42)).
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	Validate() error
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging.
//
// Redacted returns a representation suitable for production logs. String
// returns the full human-readable representation. For dxdist types, which
// carry no sensitive data, both representations are identical; the split is
// kept so that values slot into logging code that always calls Redacted.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name MUST be constant for a given type, SHOULD follow CamelCase
// and MUST NOT include a package prefix (for example, "Distance", "SI").
// Type names are used in error messages and by ValidateAll to label
// failures.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero state.
//
// For Distance the zero state is a magnitude of exactly 0 m, which is a
// valid value (the additive identity). For enum-like unit types the zero
// state is the unassigned constant 0, which is not a valid unit.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero state.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality.
//
// Equal MUST be reflexive, symmetric, transitive and consistent. It SHOULD
// compare the semantic value, not the representation: two distances built
// from different units that describe the same length MUST be equal.
type Comparable[T any] interface {
	// Equal reports whether this instance represents the same value as other.
	Equal(other T) bool
}

// Ordered defines the contract for types with a total order.
//
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equal and a positive number otherwise. Compare(x) == 0
// MUST agree with Equal(x). Ordered values can be passed directly to
// slices.SortFunc via a method expression.
type Ordered[T any] interface {
	Comparable[T]

	// Compare reports the ordering of the receiver relative to other.
	Compare(other T) int
}
