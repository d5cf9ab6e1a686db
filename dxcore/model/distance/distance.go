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

// Package distance provides Distance, a unit-agnostic length measurement
// such as 15 km.
//
// A Distance stores its magnitude in metres as an exact decimal
// (github.com/shopspring/decimal). Factories accept a magnitude and any
// unit.LengthUnit and convert to metres immediately; the unit is not
// retained. Arithmetic, comparison and equality all operate on the
// canonical metres value, so distances built from different units combine
// and compare exactly:
//
//	a := distance.Of(1.23456789, unit.Kilometre)
//	b := distance.Of(1234567.89, unit.Millimetre)
//	a.Equal(b) // true
//
// Distance is an immutable value type. Every operation returns a new
// Distance and values are safe for concurrent use. The zero value is a
// valid distance of 0 m, identical to Zero.
//
// # Construction
//
// New, NewMetres and NewDecimal validate their inputs and return a
// *errors.ValidationError for a nil or unknown unit and for a NaN or
// infinite magnitude. Of, OfMetres and OfDecimal are the panicking forms,
// intended for inputs known to be valid (literals, constants). PlusOf and
// MinusOf follow the Of convention.
//
// # Conversion
//
// To and ToMetres return float64 approximations of the exact value. Only
// that final step is lossy. Use Metres and In for exact decimal results;
// In rounds non-terminating quotients as described by unit.FromMetres.
package distance

import (
	"dirpx.dev/dxdist/dxcore/model"
	"dirpx.dev/dxdist/dxcore/model/unit"
	"dirpx.dev/rxmerr"
	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Suffix is appended to the canonical decimal value by String.
const Suffix = " metres"

// Zero is the distance of 0 m, the additive identity.
var Zero = Distance{}

// Distance is a length measurement held in metres as an exact decimal.
//
// Distance values MUST NOT be compared with ==: two equal distances may
// carry different decimal exponents (1.5 and 1.50). Use Equal, Compare, or
// Key when a comparable map key is needed.
type Distance struct {
	metres decimal.Decimal
}

// New returns the distance of magnitude expressed in u.
//
// New reports every problem with its inputs at once: a NaN or infinite
// magnitude and a nil or unknown unit are each returned as a
// *errors.ValidationError, combined with rxmerr when both occur.
func New[N Number](magnitude N, u unit.LengthUnit) (Distance, error) {
	c := rxmerr.NewCollector()

	m, err := decimalOf(magnitude)
	if err != nil {
		c.Append(err)
	}
	if err := unit.Validate(u); err != nil {
		c.Append(err)
	}
	if err := c.Err(); err != nil {
		return Zero, err
	}

	return Distance{metres: unit.ToMetres(u, m)}, nil
}

// NewMetres returns the distance of magnitude metres. It fails only for a
// NaN or infinite magnitude.
func NewMetres[N Number](magnitude N) (Distance, error) {
	m, err := decimalOf(magnitude)
	if err != nil {
		return Zero, err
	}
	return Distance{metres: m}, nil
}

// NewDecimal returns the distance of an exact decimal magnitude expressed
// in u. It fails only for a nil or unknown unit.
func NewDecimal(magnitude decimal.Decimal, u unit.LengthUnit) (Distance, error) {
	if err := unit.Validate(u); err != nil {
		return Zero, err
	}
	return Distance{metres: unit.ToMetres(u, magnitude)}, nil
}

// Of is like New but panics if the inputs are invalid.
func Of[N Number](magnitude N, u unit.LengthUnit) Distance {
	return must(New(magnitude, u))
}

// OfMetres is like NewMetres but panics if magnitude is NaN or infinite.
func OfMetres[N Number](magnitude N) Distance {
	return must(NewMetres(magnitude))
}

// OfDecimal is like NewDecimal but panics if u is nil or unknown.
func OfDecimal(magnitude decimal.Decimal, u unit.LengthUnit) Distance {
	return must(NewDecimal(magnitude, u))
}

// Sum returns the total of ds, or Zero when ds is empty.
func Sum(ds ...Distance) Distance {
	total := Zero
	for _, d := range ds {
		total = total.Plus(d)
	}
	return total
}

// Plus returns d + other.
func (d Distance) Plus(other Distance) Distance {
	return Distance{metres: d.metres.Add(other.metres)}
}

// PlusOf returns d plus augend expressed in u. It panics on a NaN or
// infinite augend or an invalid unit.
func (d Distance) PlusOf(augend float64, u unit.LengthUnit) Distance {
	return d.Plus(Of(augend, u))
}

// Minus returns d - other. The result may be negative.
func (d Distance) Minus(other Distance) Distance {
	return Distance{metres: d.metres.Sub(other.metres)}
}

// MinusOf returns d minus subtrahend expressed in u. It panics on a NaN or
// infinite subtrahend or an invalid unit.
func (d Distance) MinusOf(subtrahend float64, u unit.LengthUnit) Distance {
	return d.Minus(Of(subtrahend, u))
}

// Metres returns the exact canonical magnitude in metres.
func (d Distance) Metres() decimal.Decimal {
	return d.metres
}

// In returns the magnitude of d expressed in u as an exact decimal, rounded
// per unit.FromMetres when the quotient does not terminate. In panics if u
// is nil or unknown.
func (d Distance) In(u unit.LengthUnit) decimal.Decimal {
	return unit.FromMetres(u, d.metres)
}

// To returns the magnitude of d expressed in u as the nearest float64.
// To panics if u is nil or unknown.
func (d Distance) To(u unit.LengthUnit) float64 {
	return d.In(u).InexactFloat64()
}

// ToMetres returns the magnitude of d in metres as the nearest float64.
func (d Distance) ToMetres() float64 {
	return d.metres.InexactFloat64()
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than, as
// long as, or longer than other.
func (d Distance) Compare(other Distance) int {
	return d.metres.Cmp(other.metres)
}

// Less reports whether d is strictly shorter than other.
func (d Distance) Less(other Distance) bool {
	return d.Compare(other) < 0
}

// Greater reports whether d is strictly longer than other.
func (d Distance) Greater(other Distance) bool {
	return d.Compare(other) > 0
}

// Equal reports whether d and other describe the same length, regardless
// of the units or decimal exponents they were built from.
func (d Distance) Equal(other Distance) bool {
	return d.metres.Equal(other.metres)
}

// Key returns the canonical decimal text of the metres value. Equal
// distances always produce the same key, so Key is suitable as a map key.
func (d Distance) Key() string {
	return d.metres.String()
}

// Hash returns a 64-bit hash of Key. Equal distances hash identically.
func (d Distance) Hash() uint64 {
	return xxhash.Sum64String(d.Key())
}

// String returns the canonical metres value followed by Suffix, for
// example "60 metres" or "0.0254 metres".
func (d Distance) String() string {
	return d.Key() + Suffix
}

// Redacted returns the same representation as String.
func (d Distance) Redacted() string {
	return d.String()
}

// TypeName returns "Distance".
func (d Distance) TypeName() string {
	return "Distance"
}

// IsZero reports whether d is exactly 0 m.
func (d Distance) IsZero() bool {
	return d.metres.IsZero()
}

// Validate always returns nil: every Distance that can be constructed is
// valid, including negative ones.
func (d Distance) Validate() error {
	return nil
}

func must(d Distance, err error) Distance {
	if err != nil {
		panic(err)
	}
	return d
}

var (
	_ model.Model             = Distance{}
	_ model.Ordered[Distance] = Distance{}
)
