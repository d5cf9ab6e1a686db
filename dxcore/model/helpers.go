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

package model

import (
	"fmt"

	"dirpx.dev/rxmerr"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first one.
//
// When a model fails validation, the error is wrapped with its position in
// the slice (zero-indexed) and its type name obtained from TypeName, so
// callers can identify exactly which models failed and why. All failures are
// aggregated into a single error with rxmerr.Collector. Empty slices are
// valid and return nil.
//
// Example:
//
//	units := []unit.LengthUnit{unit.Metre, unit.SI(42)}
//	if err := model.ValidateAll(units); err != nil {
//	    // "model[1] (SI): dxdist: invalid SI: unknown unit"
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// MustValidate validates a model and panics if validation fails.
//
// MustValidate returns the model unchanged on success, which allows inline
// use. It is meant for test setup and package initialization, where an
// invalid model is a programming error. The panic value is an error that
// names the type and wraps the validation error, so a recovered value can
// be inspected with errors.As.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Errorf("model validation failed for %s: %w", m.TypeName(), err))
	}
	return m
}
