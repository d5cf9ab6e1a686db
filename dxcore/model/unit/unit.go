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

// Package unit defines length units and the conversions between a unit and
// the canonical metre.
//
// A LengthUnit exposes a single exact decimal factor: the length of one unit
// expressed in metres. Every other conversion is derived from that factor by
// the free functions ToMetres and FromMetres, so a unit implementation never
// repeats conversion logic.
//
// Two closed families are provided:
//
//   - SI: Millimetre through Kilometre, factors are exact powers of ten.
//   - ImperialUS: Thou through League, factors are exact decimal literals
//     (for example, Foot is 0.3048 m).
//
// Unit values are process-wide constants. They carry no state and are safe
// for concurrent use.
package unit

import (
	"dirpx.dev/dxdist/dxcore/errors"
	"dirpx.dev/dxdist/dxcore/model"
	"github.com/shopspring/decimal"
)

// DivisionScale is the number of decimal places FromMetres keeps beyond the
// scale of its dividend when a quotient does not terminate.
//
// Quotients are rounded half away from zero at that scale. Division by any
// SI factor is always exact because it needs at most three extra places.
const DivisionScale int32 = 20

// LengthUnit is a unit of length.
//
// A length unit MUST provide the equivalent value of one unit in the
// reference unit, the metre. Implementations are expected to be enum-like
// constants that also satisfy the model contract, so that an out-of-range
// value can be detected with Validate before its factor is used.
//
// A caller-defined unit backed by a pointer type MUST make Validate reject a
// nil receiver; otherwise the nil pointer passes Validate and is dereferenced
// by Metres.
type LengthUnit interface {
	model.Model

	// Metres returns the number of metres in one unit. The returned factor
	// is never zero for a valid unit.
	Metres() decimal.Decimal
}

// ToMetres converts magnitude, expressed in u, to metres.
//
// The product is exact. ToMetres panics if u is nil or invalid.
func ToMetres(u LengthUnit, magnitude decimal.Decimal) decimal.Decimal {
	return magnitude.Mul(factor(u))
}

// FromMetres converts metres to the equivalent magnitude expressed in u.
//
// The quotient is computed with DivRound at DivisionScale places beyond the
// scale of metres, so exact results stay exact and non-terminating ones are
// rounded half away from zero. FromMetres panics if u is nil or invalid.
func FromMetres(u LengthUnit, metres decimal.Decimal) decimal.Decimal {
	scale := DivisionScale
	if exp := metres.Exponent(); exp < 0 {
		scale -= exp
	}
	return metres.DivRound(factor(u), scale)
}

// Validate reports whether u can be used for conversion: it MUST be non-nil
// and one of its family's defined constants.
func Validate(u LengthUnit) error {
	if u == nil {
		return &errors.ValidationError{Type: "LengthUnit", Reason: "must not be nil"}
	}
	return u.Validate()
}

// All returns every defined unit, SI units first in ascending size followed
// by ImperialUS units in ascending size.
//
// The returned slice is freshly allocated on each call.
func All() []LengthUnit {
	all := make([]LengthUnit, 0, len(siMetres)+len(imperialMetres)-2)
	for s := Millimetre; s <= Kilometre; s++ {
		all = append(all, s)
	}
	for i := Thou; i <= League; i++ {
		all = append(all, i)
	}
	return all
}

// factor panics with the *errors.ValidationError from Validate, the same
// value the distance factories panic with.
func factor(u LengthUnit) decimal.Decimal {
	if err := Validate(u); err != nil {
		panic(err)
	}
	return u.Metres()
}
