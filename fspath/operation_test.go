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

package fspath_test

import (
	fspath "github.com/sabouaram/remotefs/fspath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Join", func() {
	Context("with a relative right-hand side", func() {
		It("should append components", func() {
			p := fspath.Parse("a/b").Join(fspath.Parse("c/d"))
			Expect(p.String()).To(Equal("a/b/c/d"))
		})

		It("should apply the parent pop rule across the boundary", func() {
			p := fspath.Parse("a/b").Join(fspath.Parse("../c"))
			Expect(p.String()).To(Equal("a/c"))
		})

		It("should not mutate the receiver", func() {
			a := fspath.Parse("a/b")
			_ = a.Join(fspath.Parse("c"))
			Expect(a.String()).To(Equal("a/b"))
		})
	})

	Context("with an absolute right-hand side", func() {
		It("should yield the right-hand side alone", func() {
			p := fspath.Parse("a/b").Join(fspath.Parse("/x/y"))
			Expect(p.String()).To(Equal("/x/y"))
			Expect(p.IsAbs()).To(BeTrue())
		})
	})

	Context("associativity", func() {
		It("should hold for paths that stay under the root", func() {
			cases := [][3]string{
				{"a/b", "c", "d/e"},
				{"a", "../a", "b"},
				{"x/y/z", "..", "w"},
				{"", "a", "b/.."},
			}

			for _, tc := range cases {
				a, b, c := fspath.Parse(tc[0]), fspath.Parse(tc[1]), fspath.Parse(tc[2])
				l := a.Join(b).Join(c)
				r := a.Join(b.Join(c))
				Expect(l.String()).To(Equal(r.String()), "case %v", tc)
			}
		})
	})
})

var _ = Describe("JoinPart", func() {
	It("should append one component", func() {
		Expect(fspath.Parse("a").JoinPart("b").String()).To(Equal("a/b"))
	})

	It("should apply the pop rule", func() {
		Expect(fspath.Parse("a/b").JoinPart("..").String()).To(Equal("a"))
	})
})

var _ = Describe("Relative", func() {
	It("should clear the absolute flag only", func() {
		p := fspath.Parse("/a/b").Relative()
		Expect(p.IsAbs()).To(BeFalse())
		Expect(p.String()).To(Equal("a/b"))
	})
})
