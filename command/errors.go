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

package command

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorCommandNotFound liberr.CodeError = iota + liberr.MinAvailable + 20
	ErrorArgNumber
	ErrorArgInt
	ErrorArgPath
	ErrorArgHostname
	ErrorBadPattern
	ErrorAccessDenied
	ErrorPathTooLong
	ErrorUnknownUser
	ErrorBadCredentials
	ErrorExec
)

func init() {
	if liberr.ExistInMapMessage(ErrorCommandNotFound) {
		panic(fmt.Errorf("error code collision with package remotefs/command"))
	}
	liberr.RegisterIdFctMessage(ErrorCommandNotFound, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorCommandNotFound:
		return "Command %s not found"
	case ErrorArgNumber:
		return "number of arguments doesn't match"
	case ErrorArgInt:
		return "argument should be an int"
	case ErrorArgPath:
		return "invalid path argument"
	case ErrorArgHostname:
		return "invalid hostname"
	case ErrorBadPattern:
		return "invalid pattern"
	case ErrorAccessDenied:
		return "access denied."
	case ErrorPathTooLong:
		return "the path is too long."
	case ErrorUnknownUser:
		return "Unknown user: %s"
	case ErrorBadCredentials:
		return "Unknown user/pwd pair"
	case ErrorExec:
		return "command execution failed"
	}

	return liberr.NullMessage
}
