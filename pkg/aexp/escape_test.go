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

func TestDecodeEscape(t *testing.T) {
	assert.Equal(t, '\n', DecodeEscape('n'))
	assert.Equal(t, '\t', DecodeEscape('t'))
	assert.Equal(t, '\r', DecodeEscape('r'))
}

func TestDecodeEscapeUnimplemented(t *testing.T) {
	// Multi-character escapes must abort, never decode wrongly.
	assert.Panics(t, func() { DecodeEscape('u') })
	assert.Panics(t, func() { DecodeEscape('x') })
}

func TestDecodeEscapeUnknown(t *testing.T) {
	assert.Panics(t, func() { DecodeEscape('q') })
}
