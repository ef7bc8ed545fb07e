/*
 * MIT License
 *
 * Copyright (c) 2024 Salim Abouaram
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package vfs

import (
	"os"

	fspath "github.com/sabouaram/remotefs/fspath"
)

// TemporaryFile owns an open write stream under the cache's temporary
// directory and the real path the content will be published at. Nothing is
// visible at the real path until the cache commits the file.
type TemporaryFile struct {
	tmp  string
	real fspath.Path
	f    *os.File
}

// RealPath returns the target path, relative to the base directory.
func (t *TemporaryFile) RealPath() fspath.Path {
	return t.real
}

// TempPath returns the on-disk path of the temporary content.
func (t *TemporaryFile) TempPath() string {
	return t.tmp
}

// Write appends to the temporary content.
func (t *TemporaryFile) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

// Close closes the write stream. It is idempotent.
func (t *TemporaryFile) Close() error {
	if t.f == nil {
		return nil
	}

	e := t.f.Close()
	t.f = nil
	return e
}

// Abort closes the stream and removes the temporary content from disk,
// leaving the real path untouched.
func (t *TemporaryFile) Abort() {
	_ = t.Close()
	_ = os.Remove(t.tmp)
}
