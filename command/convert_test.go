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

package command_test

import (
	"strings"

	liberr "github.com/nabbar/golib/errors"
	"github.com/sabouaram/remotefs/command"
	fspath "github.com/sabouaram/remotefs/fspath"
	sessns "github.com/sabouaram/remotefs/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func raws(vals ...string) []command.RawArg {
	out := make([]command.RawArg, 0, len(vals))
	for _, v := range vals {
		out = append(out, command.RawArg{Value: v})
	}
	return out
}

var _ = Describe("Convert", func() {
	var sess *sessns.Session

	BeforeEach(func() {
		sess = sessns.New()
	})

	Context("arity", func() {
		It("should reject a count mismatch", func() {
			_, err := command.Convert(sess, command.Spec{command.ArgString}, raws())
			Expect(err).To(HaveOccurred())
			Expect(liberr.IsCode(err, command.ErrorArgNumber)).To(BeTrue())
		})

		It("should accept an exact match", func() {
			args, err := command.Convert(sess, command.Spec{command.ArgString}, raws("x"))
			Expect(err).ToNot(HaveOccurred())
			Expect(args[0].String()).To(Equal("x"))
		})
	})

	Context("int arguments", func() {
		It("should convert decimals", func() {
			args, err := command.Convert(sess, command.Spec{command.ArgInt}, raws("42"))
			Expect(err).ToNot(HaveOccurred())
			Expect(args[0].Int()).To(Equal(42))
		})

		It("should reject non-decimals", func() {
			_, err := command.Convert(sess, command.Spec{command.ArgInt}, raws("4x2"))
			Expect(liberr.IsCode(err, command.ErrorArgInt)).To(BeTrue())
		})
	})

	Context("hostname arguments", func() {
		It("should accept RFC 1123 hostnames", func() {
			for _, h := range []string{"localhost", "example.com", "a-1.b-2.c"} {
				_, err := command.Convert(sess, command.Spec{command.ArgHostname}, raws(h))
				Expect(err).ToNot(HaveOccurred(), h)
			}
		})

		It("should reject malformed hostnames", func() {
			for _, h := range []string{"-bad", "bad-", "ex ample", "a;rm"} {
				_, err := command.Convert(sess, command.Spec{command.ArgHostname}, raws(h))
				Expect(liberr.IsCode(err, command.ErrorArgHostname)).To(BeTrue(), h)
			}
		})
	})

	Context("path arguments", func() {
		It("should compose with the working directory", func() {
			sess.Chdir(fspath.Parse("proj"))

			args, err := command.Convert(sess, command.Spec{command.ArgPath}, raws("src/main.c"))
			Expect(err).ToNot(HaveOccurred())
			Expect(args[0].Path().String()).To(Equal("proj/src/main.c"))
		})

		It("should force an absolute argument relative to the base", func() {
			sess.Chdir(fspath.Parse("proj"))

			args, err := command.Convert(sess, command.Spec{command.ArgPath}, raws("/etc/passwd"))
			Expect(err).ToNot(HaveOccurred())
			Expect(args[0].Path().String()).To(Equal("etc/passwd"))
			Expect(args[0].Path().IsAbs()).To(BeFalse())
		})

		It("should reject a NUL byte", func() {
			_, err := command.Convert(sess, command.Spec{command.ArgPath}, raws("a\x00b"))
			Expect(liberr.IsCode(err, command.ErrorArgPath)).To(BeTrue())
		})

		It("should deny a parent traversal from the root", func() {
			_, err := command.Convert(sess, command.Spec{command.ArgPath}, raws("../.."))
			Expect(liberr.IsCode(err, command.ErrorAccessDenied)).To(BeTrue())
		})

		It("should deny an escape that dips below the base mid-path", func() {
			sess.Chdir(fspath.Parse("proj"))

			_, err := command.Convert(sess, command.Spec{command.ArgPath}, raws("../../etc/passwd"))
			Expect(liberr.IsCode(err, command.ErrorAccessDenied)).To(BeTrue())
		})

		It("should bound the canonical length at 128", func() {
			ok := strings.Repeat("a", 128)
			_, err := command.Convert(sess, command.Spec{command.ArgPath}, raws(ok))
			Expect(err).ToNot(HaveOccurred())

			long := strings.Repeat("a", 129)
			_, err = command.Convert(sess, command.Spec{command.ArgPath}, raws(long))
			Expect(liberr.IsCode(err, command.ErrorPathTooLong)).To(BeTrue())
		})
	})
})
