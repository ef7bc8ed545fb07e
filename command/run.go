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
	libsck "github.com/sabouaram/remotefs/socket"
	sessns "github.com/sabouaram/remotefs/session"
)

// Run evaluates one command line in the given environment. It is the job
// body scheduled on the command worker pool, and the only place where a
// failure value becomes an `Error:` packet.
func Run(e Env, line string) {
	Report(e, run(e, line))
}

func run(e Env, line string) liberr.Error {
	name, raw := Parse(line)

	cmd, err := Create(name)
	if err != nil {
		return err
	}

	if err = gate(cmd, e.Sess); err != nil {
		return err
	}

	args, err := Convert(e.Sess, cmd.Spec(), raw)
	if err != nil {
		return err
	}

	return cmd.Execute(e, args)
}

// gate applies the command's middleware against the session state. Issuing
// anything other than `pass` while a handshake is pending aborts it before
// the middleware's own verdict.
func gate(cmd Command, s *sessns.Session) liberr.Error {
	mw := cmd.Middleware()

	if mw != MiddlewareAwaitingPassword && s.State() == sessns.StateAwaitingPassword {
		s.AbortLogin()
	}

	switch mw {
	case MiddlewareNone:
		return nil

	case MiddlewareAwaitingPassword:
		if s.State() == sessns.StateAwaitingPassword {
			return nil
		}
		s.AbortLogin()
		return ErrorAccessDenied.Error(nil)

	case MiddlewareLoggedIn:
		if s.State() == sessns.StateLoggedIn {
			return nil
		}
		return ErrorAccessDenied.Error(nil)

	case MiddlewareLoggedOut:
		if s.State() != sessns.StateLoggedIn {
			return nil
		}
		return ErrorAccessDenied.Error(nil)
	}

	return ErrorAccessDenied.Error(nil)
}

// Report writes a recoverable failure to the command socket and routes
// network failures to the logs. The connection stays usable either way.
func Report(e Env, err liberr.Error) {
	if err == nil {
		return
	}

	if libsck.IsNetworkError(err) {
		if e.Log != nil {
			e.Log().WithField("fd", e.Sock.Fd()).WithError(err).Warn("network error")
		}
		return
	}

	if we := e.Sock.WriteString("Error: " + err.StringError() + "\n"); we != nil {
		if e.Log != nil {
			e.Log().WithField("fd", e.Sock.Fd()).WithError(we).Warn("could not report error to client")
		}
	}
}
