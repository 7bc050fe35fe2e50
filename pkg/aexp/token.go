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

import (
	"fmt"

	"github.com/consensys/go-aexp/pkg/util/source"
)

// Kind distinguishes the different categories of token arising when scanning
// an expression.
type Kind uint8

// OPERATOR signals an arithmetic or relational operator
const OPERATOR Kind = 0

// IDENTIFIER signals a variable name
const IDENTIFIER Kind = 1

// NUMBER signals an integer number
const NUMBER Kind = 2

// LBRACE signals "("
const LBRACE Kind = 3

// RBRACE signals ")"
const RBRACE Kind = 4

// String returns a human-readable name for this kind.
func (k Kind) String() string {
	switch k {
	case OPERATOR:
		return "operator"
	case IDENTIFIER:
		return "identifier"
	case NUMBER:
		return "number"
	case LBRACE:
		return "lbrace"
	case RBRACE:
		return "rbrace"
	default:
		panic("unreachable")
	}
}

// Operator identifies one of the operators of the expression language.
type Operator uint8

// ADD signals "+"
const ADD Operator = 0

// SUB signals "-"
const SUB Operator = 1

// MUL signals "*"
const MUL Operator = 2

// DIV signals "/"
const DIV Operator = 3

// MOD signals "%"
const MOD Operator = 4

// EQUALS signals "="
const EQUALS Operator = 5

// NOT_EQUALS signals "<>"
const NOT_EQUALS Operator = 6

// LESS_THAN signals "<"
const LESS_THAN Operator = 7

// LESS_THAN_EQUALS signals "<="
const LESS_THAN_EQUALS Operator = 8

// GREATER_THAN signals ">"
const GREATER_THAN Operator = 9

// GREATER_THAN_EQUALS signals ">="
const GREATER_THAN_EQUALS Operator = 10

// String returns the lexeme of this operator.
func (o Operator) String() string {
	switch o {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case MOD:
		return "%"
	case EQUALS:
		return "="
	case NOT_EQUALS:
		return "<>"
	case LESS_THAN:
		return "<"
	case LESS_THAN_EQUALS:
		return "<="
	case GREATER_THAN:
		return ">"
	case GREATER_THAN_EQUALS:
		return ">="
	default:
		panic("unreachable")
	}
}

// Token associates a recognised lexeme with the position at which it began in
// the original text.  The lexeme itself (Text) is a view into the original
// text covering exactly the bytes of the Span, never a copy; hence, the
// original text must outlive any tokens scanned from it.
type Token struct {
	// Kind of this token.
	Kind Kind
	// Operator identified, when Kind is OPERATOR.
	Op Operator
	// Numeric value, when Kind is NUMBER.  Literals which do not fit a
	// signed 32bit integer scan as zero.
	Number int32
	// Lexeme as it appeared in the original text.
	Text string
	// Byte range of the lexeme within the original text.
	Span source.Span
	// Line on which the lexeme begins (counting from 1).
	Line uint
	// Column at which the lexeme begins (counting from 1).
	Column uint
}

// String returns a human-readable summary of this token, including its
// position.
func (p *Token) String() string {
	var kind string
	//
	switch p.Kind {
	case OPERATOR:
		kind = fmt.Sprintf("operator(%s)", p.Op)
	case IDENTIFIER:
		kind = fmt.Sprintf("identifier(%s)", p.Text)
	case NUMBER:
		kind = fmt.Sprintf("number(%d)", p.Number)
	default:
		kind = p.Kind.String()
	}
	//
	return fmt.Sprintf("%d:%d:%s", p.Line, p.Column, kind)
}
