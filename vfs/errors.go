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
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorNotFound liberr.CodeError = iota + liberr.MinAvailable + 50
	ErrorSkipArborescence
	ErrorNotAbsolute
	ErrorScan
	ErrorMkdir
	ErrorRemove
	ErrorOpen
	ErrorTempCreate
	ErrorCommit
)

func init() {
	if liberr.ExistInMapMessage(ErrorNotFound) {
		panic(fmt.Errorf("error code collision with package remotefs/vfs"))
	}
	liberr.RegisterIdFctMessage(ErrorNotFound, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorNotFound:
		return "%s not found"
	case ErrorSkipArborescence:
		return "can't create %s: skipping part of the arborescence"
	case ErrorNotAbsolute:
		return "can only initialize from absolute paths"
	case ErrorScan:
		return "could not scan the base directory"
	case ErrorMkdir:
		return "could not create the directory"
	case ErrorRemove:
		return "could not remove the path"
	case ErrorOpen:
		return "%s can't be opened"
	case ErrorTempCreate:
		return "could not create a temporary file"
	case ErrorCommit:
		return "could not commit temporary file"
	}

	return liberr.NullMessage
}
