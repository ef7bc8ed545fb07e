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

package session_test

import (
	fspath "github.com/sabouaram/remotefs/fspath"
	sessns "github.com/sabouaram/remotefs/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session state machine", func() {
	var (
		s *sessns.Session
		r *sessns.Registry
	)

	BeforeEach(func() {
		s = sessns.New()
		r = sessns.NewRegistry()
	})

	Context("initial state", func() {
		It("should be anonymous with an empty working directory", func() {
			Expect(s.State()).To(Equal(sessns.StateAnonymous))
			Expect(s.User()).To(Equal(""))
			Expect(s.Cwd().Empty()).To(BeTrue())
		})
	})

	Context("handshake", func() {
		It("should move to AwaitingPassword on BeginLogin", func() {
			s.BeginLogin("alice")
			Expect(s.State()).To(Equal(sessns.StateAwaitingPassword))
			Expect(s.User()).To(Equal("alice"))
		})

		It("should reach LoggedIn on CompleteLogin and count the session", func() {
			s.BeginLogin("alice")
			s.CompleteLogin(r)

			Expect(s.State()).To(Equal(sessns.StateLoggedIn))
			Expect(r.Count("alice")).To(Equal(uint(1)))
		})

		It("should reset on AbortLogin and stay usable for a retry", func() {
			s.BeginLogin("alice")
			s.AbortLogin()

			Expect(s.State()).To(Equal(sessns.StateAnonymous))
			Expect(s.User()).To(Equal(""))

			s.BeginLogin("bob")
			Expect(s.State()).To(Equal(sessns.StateAwaitingPassword))
		})
	})

	Context("logout", func() {
		It("should release the registry slot and reset the session", func() {
			s.BeginLogin("alice")
			s.CompleteLogin(r)
			s.Chdir(fspath.Parse("proj"))

			s.Logout(r)

			Expect(s.State()).To(Equal(sessns.StateAnonymous))
			Expect(s.User()).To(Equal(""))
			Expect(s.Cwd().Empty()).To(BeTrue())
			Expect(r.Count("alice")).To(Equal(uint(0)))
		})

		It("should be a no-op when not logged in", func() {
			s.Logout(r)
			Expect(r.Count("")).To(Equal(uint(0)))
			Expect(s.State()).To(Equal(sessns.StateAnonymous))
		})
	})

	Context("release on close", func() {
		It("should decrement the registry for a logged-in session", func() {
			s.BeginLogin("alice")
			s.CompleteLogin(r)

			s.Release(r)
			Expect(r.Count("alice")).To(Equal(uint(0)))
		})

		It("should not decrement for an anonymous session", func() {
			other := sessns.New()
			other.BeginLogin("alice")
			other.CompleteLogin(r)

			s.Release(r)
			Expect(r.Count("alice")).To(Equal(uint(1)))
		})
	})
})

var _ = Describe("Registry", func() {
	It("should track one count per user over many sessions", func() {
		r := sessns.NewRegistry()

		for i := 0; i < 3; i++ {
			s := sessns.New()
			s.BeginLogin("alice")
			s.CompleteLogin(r)
		}

		b := sessns.New()
		b.BeginLogin("bob")
		b.CompleteLogin(r)

		Expect(r.Count("alice")).To(Equal(uint(3)))
		Expect(r.Count("bob")).To(Equal(uint(1)))
	})

	It("should list active users in key-sorted order", func() {
		r := sessns.NewRegistry()

		for _, u := range []string{"zoe", "alice", "mallory"} {
			s := sessns.New()
			s.BeginLogin(u)
			s.CompleteLogin(r)
		}

		gone := sessns.New()
		gone.BeginLogin("bob")
		gone.CompleteLogin(r)
		gone.Logout(r)

		Expect(r.Active()).To(Equal([]string{"alice", "mallory", "zoe"}))
	})
})
