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
	"testing"

	"github.com/consensys/go-aexp/pkg/util/assert"
)

func TestOperatorString(t *testing.T) {
	lexemes := map[Operator]string{
		ADD:                 "+",
		SUB:                 "-",
		MUL:                 "*",
		DIV:                 "/",
		MOD:                 "%",
		EQUALS:              "=",
		NOT_EQUALS:          "<>",
		LESS_THAN:           "<",
		LESS_THAN_EQUALS:    "<=",
		GREATER_THAN:        ">",
		GREATER_THAN_EQUALS: ">=",
	}
	//
	for op, lexeme := range lexemes {
		assert.Equal(t, lexeme, op.String())
	}
}

func TestTokenString(t *testing.T) {
	tokens := NewLexer("(x <> 42)").Collect()

	assert.Equal(t, 5, len(tokens))
	assert.Equal(t, "1:1:lbrace", tokens[0].String())
	assert.Equal(t, "1:2:identifier(x)", tokens[1].String())
	assert.Equal(t, "1:4:operator(<>)", tokens[2].String())
	assert.Equal(t, "1:7:number(42)", tokens[3].String())
	assert.Equal(t, "1:9:rbrace", tokens[4].String())
}
