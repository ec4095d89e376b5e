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


// Package nlquery translates free-text queries into structured filter
// criteria.
//
// Translation is deterministic: an ordered set of independent pattern
// matchers scans the query, each contributing an optional partial criterion.
// Patterns may appear in any order, and text between recognized phrases is
// ignored. Conflicting contributions for the same criterion are detected
// explicitly rather than resolved by precedence.
//
// Recognized phrase families:
//   - "palindrome" / "palindromic", optionally negated with "not" or "non"
//   - "single word", "one word", "N word(s)" with N a digit or number word
//   - "at least N characters", "longer than N", "N or more characters"
//   - "at most N characters", "shorter than N", "fewer than N characters"
//   - "containing/contains/with the letter/character X"
package nlquery
