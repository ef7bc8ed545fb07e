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

package config

import (
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorFileRead liberr.CodeError = iota + liberr.MinAvailable + 90
	ErrorSyntax
	ErrorIncomplete
	ErrorBaseDir
	ErrorTempDir
	ErrorValidator
)

func init() {
	if liberr.ExistInMapMessage(ErrorFileRead) {
		panic(fmt.Errorf("error code collision with package remotefs/config"))
	}
	liberr.RegisterIdFctMessage(ErrorFileRead, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorFileRead:
		return "config file not found"
	case ErrorSyntax:
		return "invalid config syntax"
	case ErrorIncomplete:
		return "incorrect config: base and port are required"
	case ErrorBaseDir:
		return "can't create base directory"
	case ErrorTempDir:
		return "can't create temp directory"
	case ErrorValidator:
		return "invalid config"
	}

	return liberr.NullMessage
}
