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
	liberr "github.com/nabbar/golib/errors"
)

// cmdPut schedules a file upload on the transfer pool, keyed by the target
// path so concurrent uploads of the same name serialize.
type cmdPut struct{}

func init() {
	Register("put", func() Command { return &cmdPut{} })
}

func (c *cmdPut) Name() string {
	return "put"
}

func (c *cmdPut) Middleware() Middleware {
	return MiddlewareLoggedIn
}

func (c *cmdPut) Spec() Spec {
	return Spec{ArgPath, ArgInt}
}

func (c *cmdPut) Execute(e Env, args Args) liberr.Error {
	return e.Xfer.Put(e.Sock, args[0].Path(), args[1].Int())
}
