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

package unit

import (
	"dirpx.dev/dxdist/dxcore/errors"
	"dirpx.dev/dxdist/dxcore/model"
	"github.com/shopspring/decimal"
)

// SI represents a length unit of the International System of Units. The
// base unit is the metre; every other unit is a power of ten of it.
//
// The zero value of SI is not a unit. It is reported by IsZero and rejected
// by Validate, so a struct field of type SI that was never assigned cannot
// silently be treated as millimetres.
type SI uint8

const (
	// Millimetre is 10⁻³ m.
	Millimetre SI = iota + 1

	// Centimetre is 10⁻² m.
	Centimetre

	// Decimetre is 10⁻¹ m.
	Decimetre

	// Metre is the SI base unit of length.
	//
	// A metre is defined as the length of the path travelled by light in
	// vacuum during a time interval of 1/299792458 of a second.
	Metre

	// Decametre is 10¹ m.
	Decametre

	// Hectometre is 10² m.
	Hectometre

	// Kilometre is 10³ m.
	Kilometre
)

// String constants for SI values, used by String and in diagnostics.
const (
	MillimetreStr = "millimetre"
	CentimetreStr = "centimetre"
	DecimetreStr  = "decimetre"
	MetreStr      = "metre"
	DecametreStr  = "decametre"
	HectometreStr = "hectometre"
	KilometreStr  = "kilometre"
)

var siMetres = [...]decimal.Decimal{
	Millimetre: decimal.New(1, -3),
	Centimetre: decimal.New(1, -2),
	Decimetre:  decimal.New(1, -1),
	Metre:      decimal.New(1, 0),
	Decametre:  decimal.New(1, 1),
	Hectometre: decimal.New(1, 2),
	Kilometre:  decimal.New(1, 3),
}

var siNames = [...]string{
	Millimetre: MillimetreStr,
	Centimetre: CentimetreStr,
	Decimetre:  DecimetreStr,
	Metre:      MetreStr,
	Decametre:  DecametreStr,
	Hectometre: HectometreStr,
	Kilometre:  KilometreStr,
}

// Metres returns the number of metres in one s, an exact power of ten.
//
// For an invalid SI value Metres returns zero; callers that divide by the
// factor MUST validate first, which ToMetres and FromMetres do.
func (s SI) Metres() decimal.Decimal {
	if !s.Valid() {
		return decimal.Zero
	}
	return siMetres[s]
}

// String returns the lowercase British spelling of the unit name, for
// example "kilometre". Invalid values render as "unknown".
func (s SI) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return siNames[s]
}

// Valid reports whether s is one of the defined constants.
func (s SI) Valid() bool {
	return s >= Millimetre && s <= Kilometre
}

// TypeName returns "SI", the name of the type for logging and debugging.
func (s SI) TypeName() string {
	return "SI"
}

// Redacted returns the same representation as String; unit names carry no
// sensitive information.
func (s SI) Redacted() string {
	return s.String()
}

// IsZero reports whether s is the unassigned zero value.
func (s SI) IsZero() bool {
	return s == 0
}

// Equal reports whether s and other are the same unit.
func (s SI) Equal(other SI) bool {
	return s == other
}

// Validate returns a *errors.ValidationError if s is not one of the defined
// constants, for example after a numeric cast such as SI(42).
func (s SI) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "SI",
			Reason: "unknown unit",
			Value:  uint8(s),
		}
	}
	return nil
}

var (
	_ LengthUnit           = Metre
	_ model.Comparable[SI] = Metre
)
