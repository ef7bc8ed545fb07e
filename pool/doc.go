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

// Package pool implements a worker pool for tagged jobs, with three
// guarantees:
//
//   - jobs carrying the same tag run in the order they were scheduled;
//   - all jobs of a given tag run on the same worker (the one the tag was
//     mapped to on first sight, round-robin);
//   - after Join is called, every job scheduled before the stop has finished
//     before Join returns.
//
// Tag affinity is what makes per-tag state (a connection's session) safe to
// mutate without locks, and per-tag FIFO is what keeps a client's packets
// from reordering. Each worker owns its own subqueue with its own mutex and
// condition variable, so producers for distinct workers never contend.
//
// The command dispatcher uses connection descriptors as tags; the file
// transfer scheduler uses a fixed-size path suffix.
package pool
