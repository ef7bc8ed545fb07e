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

// Package command implements the wire protocol commands and the machinery
// around them: the line tokenizer with its shell-like quoting rules, the
// name-to-constructor registry, the per-command argument specification with
// typed conversion (paths are composed with the session working directory
// and sandbox-checked here), and the middleware gate enforcing the login
// state machine.
//
// Each command lives in its own file and registers itself from an init
// function, so the registry is complete once the package is linked in.
//
// Run is the single entry point used by the worker pool: it parses one
// line, resolves and gates the command, converts the arguments and executes.
// Every recoverable failure is turned into a single `Error: <message>`
// packet; network failures are routed to the logs, because writing them to
// a broken socket would be pointless.
package command
