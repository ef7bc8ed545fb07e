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

package transfer_test

import (
	"strings"

	fspath "github.com/sabouaram/remotefs/fspath"
	"github.com/sabouaram/remotefs/transfer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Key", func() {
	It("should be identical for the same path", func() {
		a := transfer.NewKey(fspath.Parse("dir/data.bin"))
		b := transfer.NewKey(fspath.Parse("dir/data.bin"))
		Expect(a).To(Equal(b))
	})

	It("should differ for paths with distinct suffixes", func() {
		a := transfer.NewKey(fspath.Parse("a.bin"))
		b := transfer.NewKey(fspath.Parse("b.bin"))
		Expect(a).ToNot(Equal(b))
	})

	It("should keep the trailing bytes of a long path", func() {
		long := strings.Repeat("d/", 40) + "file.bin"
		k := transfer.NewKey(fspath.Parse(long))

		s := fspath.Parse(long).String()
		Expect(string(k[:])).To(Equal(s[len(s)-transfer.KeySize:]))
	})
})
