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

package distance

import (
	"math"
	"math/big"
	"reflect"

	"dirpx.dev/dxdist/dxcore/errors"
	"github.com/shopspring/decimal"
)

// Number is the set of built-in numeric types accepted as a magnitude.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// decimalOf converts n to an exact decimal. Integers convert exactly.
// Floats convert to the shortest decimal that round-trips to the same
// float, so the literal 0.3048 becomes exactly 0.3048 rather than the
// binary expansion of the nearest float64.
func decimalOf[N Number](n N) (decimal.Decimal, error) {
	v := reflect.ValueOf(n)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v.Uint()), 0), nil
	}

	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, &errors.ValidationError{
			Type:   "Distance",
			Field:  "magnitude",
			Reason: "must be finite",
			Value:  f,
		}
	}
	if v.Kind() == reflect.Float32 {
		return decimal.NewFromFloat32(float32(f)), nil
	}
	return decimal.NewFromFloat(f), nil
}
