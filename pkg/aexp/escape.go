// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package aexp

import "fmt"

// DecodeEscape maps the character following a backslash in a string literal
// to the character the pair denotes, e.g. 'n' to line feed.  String literals
// are not yet part of the expression grammar, so nothing reaches here from
// the lexer.  Only the single-character escapes are implemented: the unicode
// (\u) and hex (\x) forms abort, as does any unknown escape.
func DecodeEscape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'u', 'x':
		panic("todo: multi-character escapes")
	default:
		panic(fmt.Sprintf("unknown escape \\%c", c))
	}
}
