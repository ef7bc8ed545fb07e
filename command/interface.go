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
	fspath "github.com/sabouaram/remotefs/fspath"
	libsck "github.com/sabouaram/remotefs/socket"
	sessns "github.com/sabouaram/remotefs/session"
	libvfs "github.com/sabouaram/remotefs/vfs"
	"github.com/sirupsen/logrus"
)

// Middleware selects the session gate applied before argument conversion.
type Middleware uint8

const (
	// MiddlewareNone accepts the command in any state.
	MiddlewareNone Middleware = iota
	// MiddlewareAwaitingPassword only accepts the command right after a
	// successful `login`.
	MiddlewareAwaitingPassword
	// MiddlewareLoggedIn requires an authenticated session.
	MiddlewareLoggedIn
	// MiddlewareLoggedOut refuses the command on an authenticated session.
	MiddlewareLoggedOut
)

// ArgKind is the declared type of one positional argument.
type ArgKind uint8

const (
	ArgPath ArgKind = iota
	ArgInt
	ArgString
	ArgHostname
	ArgPattern
)

// Spec is the ordered argument specification of a command. Arity must match
// exactly.
type Spec []ArgKind

// Arg is one converted argument.
type Arg struct {
	kind ArgKind
	str  string
	num  int
	path fspath.Path
}

// Path returns the sandbox-checked path value of a path argument.
func (a Arg) Path() fspath.Path {
	return a.path
}

// Int returns the numeric value of an int argument.
func (a Arg) Int() int {
	return a.num
}

// String returns the raw string value.
func (a Arg) String() string {
	return a.str
}

// Args is the converted argument list, in declaration order.
type Args []Arg

// Authenticator is the credential store view needed by the session
// commands; the config package implements it.
type Authenticator interface {
	UserExists(user string) bool
	ValidPassword(user, pwd string) bool
}

// Scheduler is the out-of-band transfer entry point; the transfer package
// implements it.
type Scheduler interface {
	Get(s libsck.Socket, path fspath.Path) liberr.Error
	Put(s libsck.Socket, path fspath.Path, size int) liberr.Error
}

// Env is the execution environment handed to a command. It carries no
// locking: the session is only touched by the worker affine to the
// connection, and the filesystem cache locks internally.
type Env struct {
	Sock  libsck.Socket
	Sess  *sessns.Session
	Users *sessns.Registry
	FS    *libvfs.VFS
	Auth  Authenticator
	Xfer  Scheduler
	Log   func() *logrus.Entry
}

// Command is one protocol command.
type Command interface {
	// Name returns the wire name.
	Name() string

	// Middleware returns the session gate of the command.
	Middleware() Middleware

	// Spec returns the argument specification.
	Spec() Spec

	// Execute runs the command. A returned recoverable error becomes one
	// `Error: <message>` packet on the command socket.
	Execute(e Env, args Args) liberr.Error
}

// Constructor builds a fresh command instance.
type Constructor func() Command
