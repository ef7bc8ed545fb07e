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

// cmdPing shells out to `ping -c 1`. The hostname argument is already
// constrained to the RFC 1123 grammar by the conversion layer, and is
// quoted anyway.
type cmdPing struct{}

func init() {
	Register("ping", func() Command { return &cmdPing{} })
}

func (c *cmdPing) Name() string {
	return "ping"
}

func (c *cmdPing) Middleware() Middleware {
	return MiddlewareNone
}

func (c *cmdPing) Spec() Spec {
	return Spec{ArgHostname}
}

func (c *cmdPing) Execute(e Env, args Args) liberr.Error {
	out, err := execShell("ping "+shellQuote(args[0].String())+" -c 1", "")
	if err != nil {
		return err
	}

	return e.Sock.WriteString(out)
}
