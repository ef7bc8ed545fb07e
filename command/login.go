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

// cmdLogin starts the two-step handshake: a known username moves the
// session to AwaitingPassword, an unknown one leaves it anonymous.
type cmdLogin struct{}

func init() {
	Register("login", func() Command { return &cmdLogin{} })
}

func (c *cmdLogin) Name() string {
	return "login"
}

func (c *cmdLogin) Middleware() Middleware {
	return MiddlewareLoggedOut
}

func (c *cmdLogin) Spec() Spec {
	return Spec{ArgString}
}

func (c *cmdLogin) Execute(e Env, args Args) liberr.Error {
	user := args[0].String()

	if !e.Auth.UserExists(user) {
		e.Sess.AbortLogin()
		return ErrorUnknownUser.Errorf(user)
	}

	e.Sess.BeginLogin(user)
	return nil
}
