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

// cmdCd moves the session working directory. Misses are reported as plain
// output lines, shell style, not as protocol errors.
type cmdCd struct{}

func init() {
	Register("cd", func() Command { return &cmdCd{} })
}

func (c *cmdCd) Name() string {
	return "cd"
}

func (c *cmdCd) Middleware() Middleware {
	return MiddlewareLoggedIn
}

func (c *cmdCd) Spec() Spec {
	return Spec{ArgPath}
}

func (c *cmdCd) Execute(e Env, args Args) liberr.Error {
	p := args[0].Path()

	e.FS.Lock()
	ent, err := e.FS.UnsafeEntry(p)
	e.FS.Unlock()

	if err != nil {
		return e.Sock.WriteString("cd: " + args[0].String() + ": No such file or directory\n")
	}

	if !ent.IsDir() {
		return e.Sock.WriteString("cd: not a directory: " + p.String() + "\n")
	}

	e.Sess.Chdir(p)
	return nil
}
