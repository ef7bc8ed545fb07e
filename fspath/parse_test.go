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

var _ = Describe("Parse", func() {
	Context("with simple inputs", func() {
		It("should keep plain components", func() {
			p := fspath.Parse("foo/bar/baz")
			Expect(p.Parts()).To(Equal([]string{"foo", "bar", "baz"}))
			Expect(p.IsAbs()).To(BeFalse())
			Expect(p.String()).To(Equal("foo/bar/baz"))
		})

		It("should flag absolute paths", func() {
			p := fspath.Parse("/foo/bar")
			Expect(p.IsAbs()).To(BeTrue())
			Expect(p.String()).To(Equal("/foo/bar"))
		})

		It("should treat the empty string as the empty relative path", func() {
			p := fspath.Parse("")
			Expect(p.Empty()).To(BeTrue())
			Expect(p.String()).To(Equal(""))
			Expect(p.Len()).To(Equal(0))
		})

		It("should drop empty components", func() {
			Expect(fspath.Parse("foo//bar/").String()).To(Equal("foo/bar"))
		})

		It("should drop dot components", func() {
			Expect(fspath.Parse("./foo/./bar").String()).To(Equal("foo/bar"))
		})
	})

	Context("with parent components", func() {
		It("should pop the previous component", func() {
			Expect(fspath.Parse("foo/../bar").String()).To(Equal("bar"))
		})

		It("should accumulate leading parents on a relative path", func() {
			p := fspath.Parse("../../foo")
			Expect(p.Parts()).To(Equal([]string{"..", "..", "foo"}))
		})

		It("should not pop a kept parent component", func() {
			Expect(fspath.Parse("../..").Parts()).To(Equal([]string{"..", ".."}))
		})
	})

	Context("with a home component", func() {
		It("should expand `~` to home/<user>", func() {
			p := fspath.ParseHome("~/notes", "alice")
			Expect(p.Parts()).To(Equal([]string{"home", "alice", "notes"}))
		})

		It("should keep `~` literal without a user", func() {
			Expect(fspath.Parse("~/notes").Parts()).To(Equal([]string{"~", "notes"}))
		})
	})

	Context("accessors", func() {
		It("should expose base and count", func() {
			p := fspath.Parse("a/b/c")
			Expect(p.Base()).To(Equal("c"))
			Expect(p.Count()).To(Equal(3))
		})

		It("should return the canonical length", func() {
			Expect(fspath.Parse("a/b").Len()).To(Equal(3))
			Expect(fspath.Parse("/a/b").Len()).To(Equal(4))
		})

		It("should copy parts defensively", func() {
			p := fspath.Parse("a/b")
			parts := p.Parts()
			parts[0] = "x"
			Expect(p.String()).To(Equal("a/b"))
		})
	})
})

var _ = Describe("ParentTraversal", func() {
	It("should accept paths that stay under the root", func() {
		Expect(fspath.Parse("a/b/c").ParentTraversal()).To(BeFalse())
	})

	It("should reject a leading parent", func() {
		Expect(fspath.Parse("../a").ParentTraversal()).To(BeTrue())
	})

	It("should reject a dip below zero in the middle", func() {
		p := fspath.Parse("a").Join(fspath.Parse("../../b"))
		Expect(p.ParentTraversal()).To(BeTrue())
	})

	It("should accept the empty path", func() {
		Expect(fspath.Parse("").ParentTraversal()).To(BeFalse())
	})
})
