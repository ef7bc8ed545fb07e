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

package session

import (
	fspath "github.com/sabouaram/remotefs/fspath"
)

// State is the position of a connection in the login state machine.
type State uint8

const (
	// StateAnonymous is the initial state of every connection.
	StateAnonymous State = iota
	// StateAwaitingPassword means a valid `login` was received and the
	// next command must be `pass`.
	StateAwaitingPassword
	// StateLoggedIn grants access to the filesystem commands.
	StateLoggedIn
)

// Session is the per-connection mutable record. It is created on accept and
// destroyed on close, and is only ever touched by the worker affine to the
// connection.
type Session struct {
	user string
	st   State
	cwd  fspath.Path
}

// New returns a fresh anonymous session with an empty relative working
// directory.
func New() *Session {
	return &Session{}
}

// User returns the username bound to the session ("" while anonymous).
func (s *Session) User() string {
	return s.user
}

// State returns the current FSM state.
func (s *Session) State() State {
	return s.st
}

// Cwd returns the working directory, relative to the base directory.
func (s *Session) Cwd() fspath.Path {
	return s.cwd
}

// Chdir replaces the working directory.
func (s *Session) Chdir(p fspath.Path) {
	s.cwd = p
}

// BeginLogin records the username and moves to AwaitingPassword.
func (s *Session) BeginLogin(user string) {
	s.user = user
	s.st = StateAwaitingPassword
	s.cwd = fspath.Path{}
}

// AbortLogin resets the handshake back to Anonymous, clearing the user.
func (s *Session) AbortLogin() {
	s.user = ""
	s.st = StateAnonymous
	s.cwd = fspath.Path{}
}

// CompleteLogin moves to LoggedIn, resets the working directory and counts
// the session in the registry.
func (s *Session) CompleteLogin(r *Registry) {
	s.st = StateLoggedIn
	s.cwd = fspath.Path{}
	r.increment(s.user)
}

// Logout leaves LoggedIn, clears the session and decrements the registry.
// Calling it in any other state is a no-op.
func (s *Session) Logout(r *Registry) {
	if s.st != StateLoggedIn {
		return
	}

	r.decrement(s.user)
	s.user = ""
	s.st = StateAnonymous
	s.cwd = fspath.Path{}
}

// Release is called when the connection closes: a logged-in session gives
// back its registry slot.
func (s *Session) Release(r *Registry) {
	if s.st == StateLoggedIn {
		r.decrement(s.user)
	}
	s.st = StateAnonymous
	s.user = ""
}
