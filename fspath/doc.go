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

// Package fspath provides the path value type used by the whole server:
// an ordered list of non-empty name components plus an absolute/relative flag.
//
// Construction normalizes the raw string: `.` components and empty components
// are dropped, `..` pops the previous component (unless that component is
// itself a `..`, so a relative path may accumulate leading `..`), and a `~`
// component expands to `home/<user>` when a user is known.
//
// The type is a value: every operation returns a new Path and never mutates
// the receiver. The canonical string form joins components with `/` and keeps
// a leading `/` only for absolute paths.
//
// ParentTraversal reports whether the running component depth ever dips below
// zero, which is the sandbox escape check applied to every client-supplied
// path after composition with the session working directory.
package fspath
