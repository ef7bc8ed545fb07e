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

package transfer

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorBind liberr.CodeError = iota + liberr.MinAvailable + 70
	ErrorListen
	ErrorAccept
	ErrorSend
	ErrorReceive
	ErrorIncomplete
)

func init() {
	if liberr.ExistInMapMessage(ErrorBind) {
		panic(fmt.Errorf("error code collision with package remotefs/transfer"))
	}
	liberr.RegisterIdFctMessage(ErrorBind, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorBind:
		return "could not open a transfer socket"
	case ErrorListen:
		return "could not listen on the transfer socket"
	case ErrorAccept:
		return "could not accept the transfer connection"
	case ErrorSend:
		return "could not send the file content"
	case ErrorReceive:
		return "could not receive the file content"
	case ErrorIncomplete:
		return "did not receive the whole file (%d bytes read)."
	}

	return liberr.NullMessage
}
