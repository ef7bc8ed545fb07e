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

package vfs_test

import (
	"io"
	"os"
	"path/filepath"

	liberr "github.com/nabbar/golib/errors"
	fspath "github.com/sabouaram/remotefs/fspath"
	libvfs "github.com/sabouaram/remotefs/vfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VFS", func() {
	Context("construction", func() {
		It("should refuse a relative base", func() {
			_, err := libvfs.New("relative/base", nil)
			Expect(err).To(HaveOccurred())
			Expect(liberr.IsCode(err, libvfs.ErrorNotAbsolute)).To(BeTrue())
		})
	})

	Context("scan", func() {
		It("should shadow the on-disk tree with correct aggregates", func() {
			base := newBase()
			seed(base, "a.txt", "hello")
			seed(base, "dir/b.txt", "world!!")
			seed(base, "dir/sub/c.txt", "x")

			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			root, err := v.Entry(fspath.Parse(""))
			Expect(err).ToNot(HaveOccurred())

			Expect(root.Size).To(Equal(int64(5 + 7 + 1)))
			Expect(root.RecChildren).To(Equal(int64(5)))
			checkAggregates(root)

			dir, err := v.Entry(fspath.Parse("dir"))
			Expect(err).ToNot(HaveOccurred())
			Expect(dir.IsDir()).To(BeTrue())
			Expect(dir.Size).To(Equal(int64(8)))
			Expect(dir.RecChildren).To(Equal(int64(3)))
		})

		It("should exclude the temporary directory", func() {
			base := newBase()
			seed(base, ".tmp/stale", "zzz")
			seed(base, "a.txt", "hi")

			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			_, err = v.Entry(fspath.Parse(".tmp"))
			Expect(err).To(HaveOccurred())
			Expect(liberr.IsCode(err, libvfs.ErrorNotFound)).To(BeTrue())
		})
	})

	Context("entry lookup", func() {
		It("should fail on a missing path", func() {
			v, err := libvfs.New(newBase(), nil)
			Expect(err).ToNot(HaveOccurred())

			_, err = v.Entry(fspath.Parse("nope"))
			Expect(liberr.IsCode(err, libvfs.ErrorNotFound)).To(BeTrue())
		})
	})

	Context("mkdir", func() {
		It("should create one directory on disk and in the cache", func() {
			base := newBase()
			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			Expect(v.Mkdir(fspath.Parse("proj"))).To(BeNil())

			st, serr := os.Stat(filepath.Join(base, "proj"))
			Expect(serr).ToNot(HaveOccurred())
			Expect(st.IsDir()).To(BeTrue())

			ent, eerr := v.Entry(fspath.Parse("proj"))
			Expect(eerr).ToNot(HaveOccurred())
			Expect(ent.IsDir()).To(BeTrue())

			root, _ := v.Entry(fspath.Parse(""))
			Expect(root.RecChildren).To(Equal(int64(1)))
		})

		It("should refuse to skip part of the arborescence", func() {
			v, err := libvfs.New(newBase(), nil)
			Expect(err).ToNot(HaveOccurred())

			err = v.Mkdir(fspath.Parse("a/b"))
			Expect(liberr.IsCode(err, libvfs.ErrorSkipArborescence)).To(BeTrue())
		})

		It("should refuse an existing path", func() {
			base := newBase()
			seed(base, "a.txt", "x")

			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			err = v.Mkdir(fspath.Parse("a.txt"))
			Expect(liberr.IsCode(err, libvfs.ErrorSkipArborescence)).To(BeTrue())
		})
	})

	Context("rm", func() {
		It("should drop a subtree from disk and cache, fixing aggregates", func() {
			base := newBase()
			seed(base, "keep.txt", "k")
			seed(base, "dir/a.txt", "aaaa")
			seed(base, "dir/sub/b.txt", "bb")

			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			Expect(v.Rm(fspath.Parse("dir"))).To(BeNil())

			_, serr := os.Stat(filepath.Join(base, "dir"))
			Expect(os.IsNotExist(serr)).To(BeTrue())

			root, _ := v.Entry(fspath.Parse(""))
			Expect(root.Size).To(Equal(int64(1)))
			Expect(root.RecChildren).To(Equal(int64(1)))
			checkAggregates(root)
		})

		It("should bubble up a missing path", func() {
			v, err := libvfs.New(newBase(), nil)
			Expect(err).ToNot(HaveOccurred())

			err = v.Rm(fspath.Parse("ghost"))
			Expect(liberr.IsCode(err, libvfs.ErrorNotFound)).To(BeTrue())
		})
	})

	Context("create and commit", func() {
		It("should publish content atomically and update the cache", func() {
			base := newBase()
			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			tmp, terr := v.Create(fspath.Parse("data.bin"))
			Expect(terr).ToNot(HaveOccurred())

			_, werr := tmp.Write([]byte("hello world"))
			Expect(werr).ToNot(HaveOccurred())

			// Not visible before commit.
			_, eerr := v.Entry(fspath.Parse("data.bin"))
			Expect(eerr).To(HaveOccurred())

			Expect(v.Commit(tmp)).To(BeNil())

			ent, eerr := v.Entry(fspath.Parse("data.bin"))
			Expect(eerr).ToNot(HaveOccurred())
			Expect(ent.Size).To(Equal(int64(11)))

			got, rerr := os.ReadFile(filepath.Join(base, "data.bin"))
			Expect(rerr).ToNot(HaveOccurred())
			Expect(string(got)).To(Equal("hello world"))
		})

		It("should keep aggregates correct when overwriting", func() {
			base := newBase()
			seed(base, "data.bin", "previous content")

			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			tmp, terr := v.Create(fspath.Parse("data.bin"))
			Expect(terr).ToNot(HaveOccurred())
			_, _ = tmp.Write([]byte("new"))
			Expect(v.Commit(tmp)).To(BeNil())

			root, _ := v.Entry(fspath.Parse(""))
			Expect(root.Size).To(Equal(int64(3)))
			Expect(root.RecChildren).To(Equal(int64(1)))
			checkAggregates(root)
		})

		It("should refuse a path skipping more than one component", func() {
			v, err := libvfs.New(newBase(), nil)
			Expect(err).ToNot(HaveOccurred())

			_, cerr := v.Create(fspath.Parse("a/b/file"))
			Expect(liberr.IsCode(cerr, libvfs.ErrorSkipArborescence)).To(BeTrue())
		})

		It("should leave no trace after an abort", func() {
			base := newBase()
			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			tmp, terr := v.Create(fspath.Parse("partial.bin"))
			Expect(terr).ToNot(HaveOccurred())
			_, _ = tmp.Write([]byte("trunc"))
			tmp.Abort()

			_, eerr := v.Entry(fspath.Parse("partial.bin"))
			Expect(eerr).To(HaveOccurred())

			_, serr := os.Stat(filepath.Join(base, "partial.bin"))
			Expect(os.IsNotExist(serr)).To(BeTrue())

			ents, derr := os.ReadDir(filepath.Join(base, ".tmp"))
			Expect(derr).ToNot(HaveOccurred())
			Expect(ents).To(BeEmpty())
		})
	})

	Context("read", func() {
		It("should stream an existing file", func() {
			base := newBase()
			seed(base, "a.txt", "payload")

			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			f, size, rerr := v.Read(fspath.Parse("a.txt"))
			Expect(rerr).ToNot(HaveOccurred())
			defer func() { _ = f.Close() }()

			Expect(size).To(Equal(int64(7)))

			got, gerr := io.ReadAll(f)
			Expect(gerr).ToNot(HaveOccurred())
			Expect(string(got)).To(Equal("payload"))
		})

		It("should check the cache before the disk", func() {
			base := newBase()
			v, err := libvfs.New(base, nil)
			Expect(err).ToNot(HaveOccurred())

			// On disk but not scanned: invisible.
			seed(base, "late.txt", "x")

			_, _, rerr := v.Read(fspath.Parse("late.txt"))
			Expect(liberr.IsCode(rerr, libvfs.ErrorNotFound)).To(BeTrue())
		})
	})

	Context("hidden names", func() {
		It("should classify dot-prefixed names", func() {
			Expect(libvfs.IsHidden(".git")).To(BeTrue())
			Expect(libvfs.IsHidden("file")).To(BeFalse())
			Expect(libvfs.IsHidden("")).To(BeFalse())
		})
	})
})
