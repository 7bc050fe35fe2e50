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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-aexp/pkg/util/assert"
)

func TestSourceFileSlice(t *testing.T) {
	srcfile := NewSourceFile("test.aexp", []byte("x + y"))

	assert.Equal(t, "x", srcfile.Slice(NewSpan(0, 1)))
	assert.Equal(t, "+", srcfile.Slice(NewSpan(2, 3)))
	assert.Equal(t, "x + y", srcfile.Slice(NewSpan(0, 5)))
	assert.Equal(t, "", srcfile.Slice(NewSpan(3, 3)))
}

func TestFindFirstEnclosingLine(t *testing.T) {
	srcfile := NewSourceFile("test.aexp", []byte("one\ntwo\nthree"))
	// Span of "two".
	line := srcfile.FindFirstEnclosingLine(NewSpan(4, 7))

	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "two", line.String())
	assert.Equal(t, 4, line.Start())
	assert.Equal(t, 3, line.Length())
}

func TestFindFirstEnclosingLineBeyondEnd(t *testing.T) {
	srcfile := NewSourceFile("test.aexp", []byte("one\ntwo"))
	line := srcfile.FindFirstEnclosingLine(NewSpan(7, 7))

	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "two", line.String())
}

func TestSyntaxErrorError(t *testing.T) {
	srcfile := NewSourceFile("test.aexp", []byte("a ? b"))
	err := srcfile.SyntaxError(NewSpan(2, 3), "unknown text encountered")

	assert.Equal(t, "2:3:unknown text encountered", err.Error())
	assert.Equal(t, srcfile, err.SourceFile())
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "test.aexp")

	if err := os.WriteFile(filename, []byte("1 + 2"), 0600); err != nil {
		t.Fatal(err)
	}
	//
	files, err := ReadFiles(filename)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(files))
	assert.Equal(t, "1 + 2", files[0].Contents())
	assert.Equal(t, filename, files[0].Filename())
}

func TestReadFilesMissing(t *testing.T) {
	_, err := ReadFiles(filepath.Join(t.TempDir(), "missing.aexp"))

	assert.True(t, err != nil, "expected an error for a missing file")
}

func TestNewSpanInvalid(t *testing.T) {
	assert.Panics(t, func() { NewSpan(2, 1) })
}
