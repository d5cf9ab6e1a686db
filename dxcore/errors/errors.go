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

// Package errors provides the error types shared by the dxdist model
// packages.
//
// The types are simple value carriers with stable message formats. They are
// designed to be easy to construct from validation code, easy to recognize
// with errors.As, and easy for users to understand when surfaced in logs.
//
// # Error Types
//
//   - ValidationError
//     Returned when a value or an input to a factory fails validation: an
//     out-of-range unit constant, a nil unit, or a magnitude that is NaN or
//     infinite.
//
// # Usage
//
//	d, err := distance.New(math.NaN(), unit.Metre)
//	var verr *errors.ValidationError
//	if stderrors.As(err, &verr) {
//	    // verr.Type == "Distance", verr.Field == "magnitude"
//	}
package errors

// ValidationError is returned when validation of a model type or of a
// factory input fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Distance", "SI"), Field optionally identifies which field or argument
// failed validation, Reason provides a human-readable explanation, and Value
// optionally carries the offending value.
//
// # Example
//
//	func (s SI) Validate() error {
//	    if !s.Valid() {
//	        return &errors.ValidationError{
//	            Type:   "SI",
//	            Reason: "unknown unit",
//	            Value:  uint8(s),
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field or argument that failed validation.
	// May be empty if the error applies to the entire value.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxdist: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxdist: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"dxdist: invalid Distance.magnitude: must be finite"
//	"dxdist: invalid SI: unknown unit"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxdist: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxdist: invalid " + e.Type + ": " + e.Reason
}
