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

package server

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorServerCreate liberr.CodeError = iota + liberr.MinAvailable + 10
	ErrorServerBind
	ErrorServerListen
	ErrorServerSelect
)

func init() {
	if liberr.ExistInMapMessage(ErrorServerCreate) {
		panic(fmt.Errorf("error code collision with package remotefs/socket/server"))
	}
	liberr.RegisterIdFctMessage(ErrorServerCreate, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorServerCreate:
		return "could not create the listening socket"
	case ErrorServerBind:
		return "could not bind the listening socket"
	case ErrorServerListen:
		return "could not listen on the socket"
	case ErrorServerSelect:
		return "could not wait for socket readiness"
	}

	return liberr.NullMessage
}
