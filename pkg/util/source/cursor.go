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
package source

import "unicode/utf8"

// EndOfText is the rune returned by a cursor once its input is exhausted.
// Since it can never begin a token, a NUL byte appearing in the input itself
// simply reads as end-of-input.
const EndOfText rune = 0x00

// Cursor provides a traversal of a source string, one rune at a time, whilst
// maintaining the position (line and column, both counting from 1) and byte
// offset of the current lookahead.  A cursor never fails: walking past the
// end of the input yields EndOfText indefinitely.
type Cursor struct {
	// String being traversed.
	text string
	// Current lookahead, or EndOfText when input is exhausted.
	lookahead rune
	// Width (in bytes) of the current lookahead.
	width int
	// Byte offset of the current lookahead within the text.
	offset int
	// Line on which the current lookahead sits (counting from 1).
	line uint
	// Column at which the current lookahead sits (counting from 1).
	column uint
}

// NewCursor constructs a cursor positioned on the first character of the
// given text, or an exhausted cursor when the text is empty.
func NewCursor(text string) *Cursor {
	p := &Cursor{text: text, line: 1, column: 1}
	p.lookahead, p.width = decodeRune(text, 0)
	//
	return p
}

// Advance consumes the current lookahead, moving the byte offset past it and
// updating the position accordingly.  Consuming a line feed moves the
// position to column 1 of the following line; consuming anything else simply
// advances the column.  The new lookahead is returned, with EndOfText
// signalling the input is now (or already was) exhausted.
func (p *Cursor) Advance() rune {
	if p.IsExhausted() {
		return EndOfText
	}
	//
	if p.lookahead == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	//
	p.offset += p.width
	p.lookahead, p.width = decodeRune(p.text, p.offset)
	//
	return p.lookahead
}

// Peek returns the rune immediately after the current lookahead, without
// consuming anything.  This gives the one rune of extra lookahead needed to
// split two-character operators, and yields EndOfText past the end of the
// input.
func (p *Cursor) Peek() rune {
	if p.IsExhausted() {
		return EndOfText
	}
	//
	r, _ := decodeRune(p.text, p.offset+p.width)
	//
	return r
}

// Lookahead returns the rune the cursor is currently sat on, or EndOfText
// when the input is exhausted.
func (p *Cursor) Lookahead() rune {
	return p.lookahead
}

// Offset returns the byte offset of the current lookahead within the
// original text.  This always falls on a rune boundary.
func (p *Cursor) Offset() int {
	return p.offset
}

// Position returns the line and column of the current lookahead, both
// counting from 1.
func (p *Cursor) Position() (line uint, column uint) {
	return p.line, p.column
}

// IsExhausted checks whether the cursor has walked off the end of its input.
// Once exhausted, a cursor remains exhausted.
func (p *Cursor) IsExhausted() bool {
	return p.lookahead == EndOfText
}

// Decode the rune starting at a given byte offset, or EndOfText when the
// offset lies at (or beyond) the end of the text.
func decodeRune(text string, offset int) (rune, int) {
	if offset >= len(text) {
		return EndOfText, 0
	}
	//
	return utf8.DecodeRuneInString(text[offset:])
}
