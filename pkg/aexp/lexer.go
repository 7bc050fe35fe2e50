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
	"strconv"
	"unicode"

	"github.com/consensys/go-aexp/pkg/util"
	"github.com/consensys/go-aexp/pkg/util/source"
)

// Lexer provides a top-level construct for tokenising a given input string,
// scanning lazily as tokens are pulled via HasNext / Next.  Whitespace and
// line comments ("// ... \n") are consumed silently between tokens.  A lexer
// never reports an error: upon reaching either the end of its input or a
// character which cannot begin a token, it simply stops producing tokens.
// In the latter case the unconsumed remainder can be observed via Remaining.
type Lexer struct {
	// Text being tokenised.
	text string
	// Cursor over the text being tokenised.
	cursor *source.Cursor
	// Token waiting to be pulled, scanned ahead by HasNext.
	buffered util.Option[Token]
	// Set once scanning has stopped for good.
	exhausted bool
}

// NewLexer constructs a new lexer for tokenising a given string.  The string
// must outlive the lexer and all tokens produced from it, since tokens hold
// views into it.
func NewLexer(text string) *Lexer {
	return &Lexer{text, source.NewCursor(text), util.None[Token](), false}
}

// HasNext checks whether or not any tokens remain.  This scans ahead (at
// most) one token, and is stable: once it reports false it reports false
// forever.
func (p *Lexer) HasNext() bool {
	p.scan()
	//
	return p.buffered.HasValue()
}

// Next returns the next token and advances the lexer.  Next follows HasNext;
// calling it on an exhausted lexer panics.
func (p *Lexer) Next() Token {
	p.scan()
	//
	token := p.buffered.Unwrap()
	p.buffered = util.None[Token]()
	//
	return token
}

// Collect is a convenience function which scans all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer) Collect() []Token {
	var tokens []Token
	// Keep scanning
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

// Remaining determines how many bytes of the original string were never
// consumed.  Following exhaustion, this is non-zero exactly when scanning
// stopped on a character which cannot begin a token.
func (p *Lexer) Remaining() uint {
	return uint(len(p.text) - p.cursor.Offset())
}

// Scan ahead a single token into the buffer, unless one is already waiting
// or the lexer is exhausted.  All trimming of whitespace and comments
// happens here.
func (p *Lexer) scan() {
	if p.exhausted || p.buffered.HasValue() {
		return
	}
	//
	for {
		p.trimWhitespace()
		// Position of token is that of its first character.
		line, column := p.cursor.Position()
		start := p.cursor.Offset()
		//
		switch c := p.cursor.Lookahead(); {
		case c == '_' || unicode.IsLetter(c):
			p.buffered = util.Some(p.scanIdentifier(start, line, column))
		case unicode.IsDigit(c):
			p.buffered = util.Some(p.scanNumber(start, line, column))
		case c == '+':
			p.cursor.Advance()
			p.buffered = util.Some(p.operator(ADD, start, line, column))
		case c == '-':
			p.cursor.Advance()
			p.buffered = util.Some(p.operator(SUB, start, line, column))
		case c == '*':
			p.cursor.Advance()
			p.buffered = util.Some(p.operator(MUL, start, line, column))
		case c == '%':
			p.cursor.Advance()
			p.buffered = util.Some(p.operator(MOD, start, line, column))
		case c == '=':
			p.cursor.Advance()
			p.buffered = util.Some(p.operator(EQUALS, start, line, column))
		case c == '/':
			if p.cursor.Advance() == '/' {
				// Line comment, not division.  Trim it and go round again.
				p.trimComment()
				continue
			}
			//
			p.buffered = util.Some(p.operator(DIV, start, line, column))
		case c == '>':
			if p.cursor.Advance() == '=' {
				p.cursor.Advance()
				p.buffered = util.Some(p.operator(GREATER_THAN_EQUALS, start, line, column))
			} else {
				p.buffered = util.Some(p.operator(GREATER_THAN, start, line, column))
			}
		case c == '<':
			switch p.cursor.Advance() {
			case '=':
				p.cursor.Advance()
				p.buffered = util.Some(p.operator(LESS_THAN_EQUALS, start, line, column))
			case '>':
				p.cursor.Advance()
				p.buffered = util.Some(p.operator(NOT_EQUALS, start, line, column))
			default:
				p.buffered = util.Some(p.operator(LESS_THAN, start, line, column))
			}
		case c == '(':
			p.cursor.Advance()
			p.buffered = util.Some(p.token(LBRACE, start, line, column))
		case c == ')':
			p.cursor.Advance()
			p.buffered = util.Some(p.token(RBRACE, start, line, column))
		default:
			// Either end of input, or a character which cannot begin any
			// token.  Scanning stops for good either way.
			p.exhausted = true
		}
		//
		return
	}
}

// Scan an identifier, given that the cursor is sat on its first character.
// Identifiers are a maximal run of letters, digits and underscores.
func (p *Lexer) scanIdentifier(start int, line uint, column uint) Token {
	c := p.cursor.Lookahead()
	//
	for c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
		c = p.cursor.Advance()
	}
	//
	return p.token(IDENTIFIER, start, line, column)
}

// Scan a number, given that the cursor is sat on its first digit.  Numbers
// are a maximal run of decimal digits; those which do not fit a signed 32bit
// integer scan as zero.
func (p *Lexer) scanNumber(start int, line uint, column uint) Token {
	for unicode.IsDigit(p.cursor.Lookahead()) {
		p.cursor.Advance()
	}
	//
	token := p.token(NUMBER, start, line, column)
	//
	if number, err := strconv.ParseInt(token.Text, 10, 32); err == nil {
		token.Number = int32(number)
	}
	//
	return token
}

// Trim any whitespace lying under the cursor.
func (p *Lexer) trimWhitespace() {
	for unicode.IsSpace(p.cursor.Lookahead()) {
		p.cursor.Advance()
	}
}

// Trim a line comment lying under the cursor, up to (but not including) the
// terminating line feed.  A comment on the final line is ended by the end of
// the input instead.
func (p *Lexer) trimComment() {
	for p.cursor.Lookahead() != '\n' && !p.cursor.IsExhausted() {
		p.cursor.Advance()
	}
}

// Construct a token of a given kind whose lexeme covers everything consumed
// since a given starting offset.
func (p *Lexer) token(kind Kind, start int, line uint, column uint) Token {
	end := p.cursor.Offset()
	//
	return Token{
		Kind:   kind,
		Text:   p.text[start:end],
		Span:   source.NewSpan(start, end),
		Line:   line,
		Column: column,
	}
}

// Construct an operator token whose lexeme covers everything consumed since
// a given starting offset.
func (p *Lexer) operator(op Operator, start int, line uint, column uint) Token {
	token := p.token(OPERATOR, start, line, column)
	token.Op = op
	//
	return token
}

// Lex a given source file into a sequence of zero or more tokens, along with
// a syntax error for any unrecognised text which stopped the scan early.
// The tokens scanned before that point are returned either way.
func Lex(srcfile source.File) ([]Token, []source.SyntaxError) {
	var (
		lexer  = NewLexer(srcfile.Contents())
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := len(srcfile.Contents()) - int(lexer.Remaining())
		err := srcfile.SyntaxError(source.NewSpan(start, len(srcfile.Contents())), "unknown text encountered")
		//
		return tokens, []source.SyntaxError{*err}
	}
	// Done
	return tokens, nil
}
