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

// cmdGet schedules a file download on the transfer pool. The reply carrying
// the ephemeral port is sent by the transfer job itself.
type cmdGet struct{}

func init() {
	Register("get", func() Command { return &cmdGet{} })
}

func (c *cmdGet) Name() string {
	return "get"
}

func (c *cmdGet) Middleware() Middleware {
	return MiddlewareLoggedIn
}

func (c *cmdGet) Spec() Spec {
	return Spec{ArgPath}
}

func (c *cmdGet) Execute(e Env, args Args) liberr.Error {
	return e.Xfer.Get(e.Sock, args[0].Path())
}
