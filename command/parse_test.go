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
	"github.com/sabouaram/remotefs/command"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func values(args []command.RawArg) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, a.Value)
	}
	return out
}

var _ = Describe("Parse", func() {
	Context("plain tokens", func() {
		It("should split on whitespace", func() {
			name, args := command.Parse("get foo bar")
			Expect(name).To(Equal("get"))
			Expect(values(args)).To(Equal([]string{"foo", "bar"}))
		})

		It("should skip leading and repeated whitespace", func() {
			name, args := command.Parse("   ls\t  a \t b  ")
			Expect(name).To(Equal("ls"))
			Expect(values(args)).To(Equal([]string{"a", "b"}))
		})

		It("should return an empty name for a blank line", func() {
			name, args := command.Parse("   ")
			Expect(name).To(Equal(""))
			Expect(args).To(BeEmpty())
		})
	})

	Context("single-quoted tokens", func() {
		It("should run to the closing quote with no escapes", func() {
			_, args := command.Parse(`grep 'a b c'`)
			Expect(values(args)).To(Equal([]string{"a b c"}))
			Expect(args[0].Quoted).To(BeTrue())
		})

		It("should keep backslashes literal", func() {
			_, args := command.Parse(`grep 'a\'`)
			Expect(values(args)).To(Equal([]string{`a\`}))
		})

		It("should discard an empty quoted token", func() {
			_, args := command.Parse("grep ''")
			Expect(args).To(BeEmpty())
		})
	})

	Context("double-quoted tokens", func() {
		It("should stop at an unescaped closing quote", func() {
			_, args := command.Parse(`grep "a b" c`)
			Expect(values(args)).To(Equal([]string{"a b", "c"}))
		})

		It("should not stop at an escaped closing quote", func() {
			_, args := command.Parse(`grep "a\"b"`)
			Expect(values(args)).To(Equal([]string{`a\"b`}))
		})

		It("should run to the end of line when unterminated", func() {
			_, args := command.Parse(`grep "abc`)
			Expect(values(args)).To(Equal([]string{"abc"}))
		})
	})

	Context("determinism", func() {
		It("should produce the same tokens when re-parsing a re-serialized line", func() {
			lines := []string{
				"put data.bin 11",
				`grep 'x y'`,
				`mkdir "a b"`,
				"cd ../..",
			}

			for _, l := range lines {
				n1, a1 := command.Parse(l)

				line := n1
				for _, a := range a1 {
					if a.Quoted {
						line += " '" + a.Value + "'"
					} else {
						line += " " + a.Value
					}
				}

				n2, a2 := command.Parse(line)
				Expect(n1).To(Equal(n2))
				Expect(a1).To(Equal(a2))
			}
		})
	})
})
