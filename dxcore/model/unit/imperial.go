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

// ImperialUS represents a length unit shared by the Imperial and the United
// States customary systems. The base unit is the international yard, defined
// as exactly 0.9144 m; every factor below is a finite decimal multiple of it.
//
// As with SI, the zero value is not a unit and fails Validate.
type ImperialUS uint8

const (
	// Thou is 1/1000 inch, 0.0000254 m. Also known as the mil.
	Thou ImperialUS = iota + 1

	// Inch is 1/36 yard, 0.0254 m.
	Inch

	// Foot is 1/3 yard, 0.3048 m.
	Foot

	// Yard is 0.9144 m.
	Yard

	// Chain is 22 yards, 20.1168 m.
	Chain

	// Furlong is 10 chains, 201.168 m.
	Furlong

	// Mile is 8 furlongs, 1609.344 m.
	Mile

	// League is 3 miles, 4828.032 m.
	League
)

// String constants for ImperialUS values, used by String and in diagnostics.
const (
	ThouStr    = "thou"
	InchStr    = "inch"
	FootStr    = "foot"
	YardStr    = "yard"
	ChainStr   = "chain"
	FurlongStr = "furlong"
	MileStr    = "mile"
	LeagueStr  = "league"
)

var imperialMetres = [...]decimal.Decimal{
	Thou:    decimal.RequireFromString("0.0000254"),
	Inch:    decimal.RequireFromString("0.0254"),
	Foot:    decimal.RequireFromString("0.3048"),
	Yard:    decimal.RequireFromString("0.9144"),
	Chain:   decimal.RequireFromString("20.1168"),
	Furlong: decimal.RequireFromString("201.168"),
	Mile:    decimal.RequireFromString("1609.344"),
	League:  decimal.RequireFromString("4828.032"),
}

var imperialNames = [...]string{
	Thou:    ThouStr,
	Inch:    InchStr,
	Foot:    FootStr,
	Yard:    YardStr,
	Chain:   ChainStr,
	Furlong: FurlongStr,
	Mile:    MileStr,
	League:  LeagueStr,
}

// Metres returns the number of metres in one i. Invalid values return zero.
func (i ImperialUS) Metres() decimal.Decimal {
	if !i.Valid() {
		return decimal.Zero
	}
	return imperialMetres[i]
}

// String returns the lowercase unit name, for example "furlong". Invalid
// values render as "unknown".
func (i ImperialUS) String() string {
	if !i.Valid() {
		return "unknown"
	}
	return imperialNames[i]
}

// Valid reports whether i is one of the defined constants.
func (i ImperialUS) Valid() bool {
	return i >= Thou && i <= League
}

// TypeName returns "ImperialUS".
func (i ImperialUS) TypeName() string {
	return "ImperialUS"
}

// Redacted returns the same representation as String.
func (i ImperialUS) Redacted() string {
	return i.String()
}

// IsZero reports whether i is the unassigned zero value.
func (i ImperialUS) IsZero() bool {
	return i == 0
}

// Equal reports whether i and other are the same unit.
func (i ImperialUS) Equal(other ImperialUS) bool {
	return i == other
}

// Validate returns a *errors.ValidationError if i is not one of the defined
// constants.
func (i ImperialUS) Validate() error {
	if !i.Valid() {
		return &errors.ValidationError{
			Type:   "ImperialUS",
			Reason: "unknown unit",
			Value:  uint8(i),
		}
	}
	return nil
}

var (
	_ LengthUnit                   = Yard
	_ model.Comparable[ImperialUS] = Yard
)
