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

package unit_test

import (
	stderrors "errors"
	"os"
	"testing"

	dxerrors "dirpx.dev/dxdist/dxcore/errors"
	"dirpx.dev/dxdist/dxcore/model"
	"dirpx.dev/dxdist/dxcore/model/unit"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type factorTable struct {
	SI         map[string]string `yaml:"si"`
	ImperialUS map[string]string `yaml:"imperial_us"`
}

func loadFactors(t *testing.T) factorTable {
	t.Helper()

	data, err := os.ReadFile("testdata/factors.yaml")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var table factorTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return table
}

func TestAll_MatchesFactorTable(t *testing.T) {
	table := loadFactors(t)

	all := unit.All()
	if want := len(table.SI) + len(table.ImperialUS); len(all) != want {
		t.Fatalf("len(All()) = %d, want %d", len(all), want)
	}

	for _, u := range all {
		t.Run(u.String(), func(t *testing.T) {
			var (
				lit string
				ok  bool
			)
			switch u.(type) {
			case unit.SI:
				lit, ok = table.SI[u.String()]
			case unit.ImperialUS:
				lit, ok = table.ImperialUS[u.String()]
			}
			if !ok {
				t.Fatalf("unit %q (%s) missing from fixture", u.String(), u.TypeName())
			}
			want := decimal.RequireFromString(lit)
			if !u.Metres().Equal(want) {
				t.Errorf("Metres() = %s, want %s", u.Metres(), want)
			}
		})
	}
}

func TestAll_Valid(t *testing.T) {
	if err := model.ValidateAll(unit.All()); err != nil {
		t.Errorf("ValidateAll(All()) error = %v, want nil", err)
	}
}

func TestAll_AscendingWithinFamily(t *testing.T) {
	all := unit.All()
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.TypeName() != cur.TypeName() {
			continue
		}
		if !prev.Metres().LessThan(cur.Metres()) {
			t.Errorf("%s (%s) should be smaller than %s (%s)", prev, prev.Metres(), cur, cur.Metres())
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		unit    unit.LengthUnit
		wantErr bool
	}{
		{name: "si_metre", unit: unit.Metre},
		{name: "imperial_league", unit: unit.League},
		{name: "nil", unit: nil, wantErr: true},
		{name: "si_zero", unit: unit.SI(0), wantErr: true},
		{name: "si_out_of_range", unit: unit.SI(42), wantErr: true},
		{name: "imperial_zero", unit: unit.ImperialUS(0), wantErr: true},
		{name: "imperial_out_of_range", unit: unit.ImperialUS(9), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := unit.Validate(tt.unit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var verr *dxerrors.ValidationError
				if !stderrors.As(err, &verr) {
					t.Errorf("Validate() error = %T, want *errors.ValidationError", err)
				}
			}
		})
	}
}

func TestToMetres(t *testing.T) {
	tests := []struct {
		name      string
		unit      unit.LengthUnit
		magnitude string
		want      string
	}{
		{"kilometre", unit.Kilometre, "1.23456789", "1234.56789"},
		{"millimetre", unit.Millimetre, "1234567.89", "1234.56789"},
		{"decimetre", unit.Decimetre, "50", "5"},
		{"yard", unit.Yard, "1", "0.9144"},
		{"mile_fraction", unit.Mile, "0.5", "804.672"},
		{"thou", unit.Thou, "1000", "0.0254"},
		{"negative_foot", unit.Foot, "-10", "-3.048"},
		{"zero_league", unit.League, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unit.ToMetres(tt.unit, decimal.RequireFromString(tt.magnitude))
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ToMetres(%s, %s) = %s, want %s", tt.unit, tt.magnitude, got, want)
			}
		})
	}
}

func TestFromMetres(t *testing.T) {
	tests := []struct {
		name   string
		unit   unit.LengthUnit
		metres string
		want   string
	}{
		{"exact_millimetre", unit.Millimetre, "15", "15000"},
		{"exact_kilometre", unit.Kilometre, "1010", "1.01"},
		{"exact_centimetre", unit.Centimetre, "0.005", "0.5"},
		{"exact_yard", unit.Yard, "0.9144", "1"},
		{"exact_mile", unit.Mile, "804.672", "0.5"},
		{"deep_scale_exact", unit.Kilometre, "0.000000000000000000000001", "0.000000000000000000000000001"},
		{"rounded_yard", unit.Yard, "1", "1.09361329833770778653"},
		{"rounded_foot", unit.Foot, "1", "3.28083989501312335958"},
		{"rounded_negative_foot", unit.Foot, "-1", "-3.28083989501312335958"},
		{"rounded_keeps_dividend_scale", unit.Yard, "1.5", "1.640419947506561679790"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unit.FromMetres(tt.unit, decimal.RequireFromString(tt.metres))
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("FromMetres(%s, %s) = %s, want %s", tt.unit, tt.metres, got, want)
			}
		})
	}
}

func TestFromMetres_RoundTrip(t *testing.T) {
	magnitude := decimal.RequireFromString("3.3")
	for _, u := range unit.All() {
		t.Run(u.String(), func(t *testing.T) {
			got := unit.FromMetres(u, unit.ToMetres(u, magnitude))
			if !got.Equal(magnitude) {
				t.Errorf("FromMetres(ToMetres(%s)) = %s, want %s", magnitude, got, magnitude)
			}
		})
	}
}

func TestConversion_PanicsOnInvalidUnit(t *testing.T) {
	tests := []struct {
		name string
		unit unit.LengthUnit
	}{
		{"nil", nil},
		{"si_zero", unit.SI(0)},
		{"si_out_of_range", unit.SI(42)},
		{"imperial_out_of_range", unit.ImperialUS(200)},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/to_metres", func(t *testing.T) {
			defer func() { assertValidationPanic(t, "ToMetres()", recover()) }()
			unit.ToMetres(tt.unit, decimal.NewFromInt(1))
		})
		t.Run(tt.name+"/from_metres", func(t *testing.T) {
			defer func() { assertValidationPanic(t, "FromMetres()", recover()) }()
			unit.FromMetres(tt.unit, decimal.NewFromInt(1))
		})
	}
}

func assertValidationPanic(t *testing.T, call string, r any) {
	t.Helper()

	if r == nil {
		t.Fatalf("%s should panic on invalid unit", call)
	}
	err, ok := r.(error)
	if !ok {
		t.Fatalf("%s panicked with %T (%v), want an error", call, r, r)
	}
	var verr *dxerrors.ValidationError
	if !stderrors.As(err, &verr) {
		t.Errorf("%s panicked with %v, want *errors.ValidationError", call, err)
	}
}
