// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"unicode/utf8"
)

// ValidateValue checks that a raw value can be accepted for analysis.
//
// Validation rules:
//   - The value must be well-formed UTF-8, since character-level properties
//     are undefined otherwise.
//
// The empty string is a valid value: it analyzes to a zero-length palindrome.
func ValidateValue(value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrInvalidEncoding)
	}
	return nil
}
