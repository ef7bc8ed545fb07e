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

// Package vfs maintains the in-memory tree shadowing the base directory.
//
// Every node aggregates two values over its subtree: the sum of all
// descendant file sizes and the count of all descendants. Insert and remove
// keep both up to date at every proper ancestor, which is what lets the
// search heuristic decide in O(1) whether a subtree is small enough to scan
// in process.
//
// The cache holds one global mutex. Exported methods acquire it; Unsafe*
// methods require the caller to hold it (via Lock/Unlock) and exist so that
// a command can iterate the tree and resolve uid/gid names under a single
// critical section.
//
// New content is never written in place: writers receive a TemporaryFile
// under `<base>/.tmp` and publish it atomically with Commit, which renames
// the temporary onto the real path and swaps the cache node.
package vfs
