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

package socket

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorSocketCreate liberr.CodeError = iota + liberr.MinAvailable
	ErrorSocketWrite
	ErrorSocketRead
	ErrorSocketClosed
)

func init() {
	if liberr.ExistInMapMessage(ErrorSocketCreate) {
		panic(fmt.Errorf("error code collision with package remotefs/socket"))
	}
	liberr.RegisterIdFctMessage(ErrorSocketCreate, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorSocketCreate:
		return "could not create a new socket"
	case ErrorSocketWrite:
		return "could not write to socket"
	case ErrorSocketRead:
		return "could not read from socket"
	case ErrorSocketClosed:
		return "connection closed by remote"
	}

	return liberr.NullMessage
}

// IsNetworkError reports whether the given error carries one of this
// package's codes. The command worker uses it to route socket failures to
// the logs instead of the wire.
func IsNetworkError(e error) bool {
	for _, c := range []liberr.CodeError{ErrorSocketCreate, ErrorSocketWrite, ErrorSocketRead, ErrorSocketClosed} {
		if liberr.IsCode(e, c) {
			return true
		}
	}
	return false
}
