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

// cmdPass completes the handshake. A wrong password resets the session to
// anonymous; a fresh `login` may be retried afterwards.
type cmdPass struct{}

func init() {
	Register("pass", func() Command { return &cmdPass{} })
}

func (c *cmdPass) Name() string {
	return "pass"
}

func (c *cmdPass) Middleware() Middleware {
	return MiddlewareAwaitingPassword
}

func (c *cmdPass) Spec() Spec {
	return Spec{ArgString}
}

func (c *cmdPass) Execute(e Env, args Args) liberr.Error {
	if !e.Auth.ValidPassword(e.Sess.User(), args[0].String()) {
		e.Sess.AbortLogin()
		return ErrorBadCredentials.Error(nil)
	}

	e.Sess.CompleteLogin(e.Users)
	return nil
}
