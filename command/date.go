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

// cmdDate replies with the system `date` output.
type cmdDate struct{}

func init() {
	Register("date", func() Command { return &cmdDate{} })
}

func (c *cmdDate) Name() string {
	return "date"
}

func (c *cmdDate) Middleware() Middleware {
	return MiddlewareLoggedIn
}

func (c *cmdDate) Spec() Spec {
	return Spec{}
}

func (c *cmdDate) Execute(e Env, _ Args) liberr.Error {
	out, err := execShell("date", "")
	if err != nil {
		return err
	}

	return e.Sock.WriteString(out)
}
