/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package avtp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument returned when a required PDU is nil
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidField returned when a field is unknown or can not be accessed in the requested direction
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidValue returned when a value is outside of the legal domain of a field
	ErrInvalidValue = errors.New("invalid value")
)

// ErrField wraps ErrInvalidField with the operation and the field name
type ErrField struct {
	Op    string
	Field string
}

func (e ErrField) Error() string {
	return fmt.Sprintf("Unable to %s field %s: %s", e.Op, e.Field, ErrInvalidField)
}

func (e ErrField) Unwrap() error {
	return ErrInvalidField
}

// ErrValue wraps ErrInvalidValue with the field name and the rejected value
type ErrValue struct {
	Field string
	Value uint64
}

func (e ErrValue) Error() string {
	return fmt.Sprintf("Value %d is not allowed for field %s: %s", e.Value, e.Field, ErrInvalidValue)
}

func (e ErrValue) Unwrap() error {
	return ErrInvalidValue
}
