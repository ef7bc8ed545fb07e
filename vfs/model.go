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

package vfs

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"

	liberr "github.com/nabbar/golib/errors"
	fspath "github.com/sabouaram/remotefs/fspath"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// TempDirName is the subdirectory of the base excluded from the cache and
// used for temporary files awaiting commit.
const TempDirName = ".tmp"

// VFS is the filesystem cache. One global mutex protects the tree and the
// uid/gid name caches.
type VFS struct {
	mu sync.Mutex

	root *Entry
	base string
	tmp  string
	ctr  uint64

	users  map[uint32]string
	groups map[uint32]string

	log func() *logrus.Entry
}

// New builds a cache over an absolute base directory and scans it. The
// `.tmp` subdirectory is excluded from the scan.
func New(base string, log func() *logrus.Entry) (*VFS, liberr.Error) {
	if !filepath.IsAbs(base) {
		return nil, ErrorNotAbsolute.Error(nil)
	}

	v := &VFS{
		root:   &Entry{Kind: KindDirectory},
		base:   filepath.Clean(base),
		tmp:    filepath.Join(filepath.Clean(base), TempDirName),
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
		log:    log,
	}

	if e := os.MkdirAll(v.tmp, 0775); e != nil {
		return nil, ErrorTempCreate.Error(e)
	}

	if err := v.Scan(); err != nil {
		return nil, err
	}

	return v, nil
}

// Base returns the absolute base directory.
func (v *VFS) Base() string {
	return v.base
}

// TempDir returns the absolute temporary directory.
func (v *VFS) TempDir() string {
	return v.tmp
}

// Abs resolves a cache-relative path against the base directory.
func (v *VFS) Abs(p fspath.Path) string {
	if p.Empty() {
		return v.base
	}
	return filepath.Join(v.base, p.String())
}

// Lock acquires the cache mutex for use with the Unsafe* methods.
func (v *VFS) Lock() {
	v.mu.Lock()
}

// Unlock releases the cache mutex.
func (v *VFS) Unlock() {
	v.mu.Unlock()
}

// Scan rebuilds the tree from the disk content of the base directory.
func (v *VFS) Scan() liberr.Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.root = &Entry{Kind: KindDirectory}

	e := filepath.WalkDir(v.base, func(path string, _ os.DirEntry, err error) error {
		if err != nil {
			// A node vanishing mid-walk is not fatal to the scan.
			return nil
		}

		if path == v.base {
			return nil
		}

		if path == v.tmp {
			return filepath.SkipDir
		}

		rel, re := filepath.Rel(v.base, path)
		if re != nil {
			return re
		}

		var st unix.Stat_t
		if se := unix.Stat(path, &st); se != nil {
			return nil
		}

		v.unsafeInsert(fspath.Parse(rel), statusFromStat(&st), st.Mode&unix.S_IFMT == unix.S_IFDIR)
		return nil
	})

	if e != nil {
		return ErrorScan.Error(e)
	}

	return nil
}

// Entry returns the node for a path, under lock.
func (v *VFS) Entry(p fspath.Path) (*Entry, liberr.Error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.UnsafeEntry(p)
}

// UnsafeEntry returns the node for a path. The caller must hold the lock.
func (v *VFS) UnsafeEntry(p fspath.Path) (*Entry, liberr.Error) {
	e := v.root

	for _, part := range p.Parts() {
		c := e.lookup(part)
		if c == nil {
			return nil, ErrorNotFound.Errorf(p.String())
		}
		e = c
	}

	return e, nil
}

// Mkdir creates one directory, on disk and in the cache. The path must name
// exactly one missing final component.
func (v *VFS) Mkdir(p fspath.Path) liberr.Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unsafeMissing(p) != 1 {
		return ErrorSkipArborescence.Errorf(p.String())
	}

	abs := v.Abs(p)

	if e := os.Mkdir(abs, 0775); e != nil {
		return ErrorMkdir.Error(e)
	}

	var st unix.Stat_t
	if e := unix.Stat(abs, &st); e != nil {
		return ErrorMkdir.Error(e)
	}

	v.unsafeInsert(p, statusFromStat(&st), true)
	return nil
}

// Rm removes a subtree from the cache and from disk.
func (v *VFS) Rm(p fspath.Path) liberr.Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.unsafeRemove(p); err != nil {
		return err
	}

	if e := os.RemoveAll(v.Abs(p)); e != nil {
		return ErrorRemove.Error(e)
	}

	return nil
}

// Create opens a temporary file for a future content of the given path.
// At most one component of the path may be missing.
func (v *VFS) Create(p fspath.Path) (*TemporaryFile, liberr.Error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unsafeMissing(p) > 1 {
		return nil, ErrorSkipArborescence.Errorf(p.String())
	}

	name := strconv.FormatUint(atomic.AddUint64(&v.ctr, 1), 10)
	tmp := filepath.Join(v.tmp, name)

	f, e := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
	if e != nil {
		return nil, ErrorTempCreate.Error(e)
	}

	return &TemporaryFile{tmp: tmp, real: p, f: f}, nil
}

// Commit atomically publishes a temporary file at its real path and swaps
// the cache node, keeping the aggregates of every ancestor correct.
func (v *VFS) Commit(t *TemporaryFile) liberr.Error {
	if e := t.Close(); e != nil {
		return ErrorCommit.Error(e)
	}

	abs := v.Abs(t.real)

	if e := os.Rename(t.tmp, abs); e != nil {
		return ErrorCommit.Error(e)
	}

	var st unix.Stat_t
	if e := unix.Stat(abs, &st); e != nil {
		return ErrorCommit.Error(e)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Overwriting: drop any previous binding first so the aggregated
	// metadata stays correct.
	_ = v.unsafeRemove(t.real)
	v.unsafeInsert(t.real, statusFromStat(&st), false)

	return nil
}

// Read checks the path against the cache, then opens the on-disk file. It
// returns the open stream and the cached size.
func (v *VFS) Read(p fspath.Path) (*os.File, int64, liberr.Error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.UnsafeRead(p)
}

// UnsafeRead is Read for callers already holding the lock.
func (v *VFS) UnsafeRead(p fspath.Path) (*os.File, int64, liberr.Error) {
	e, err := v.UnsafeEntry(p)
	if err != nil {
		return nil, 0, err
	}

	f, oe := os.Open(v.Abs(p))
	if oe != nil {
		return nil, 0, ErrorOpen.Errorf(p.String())
	}

	return f, e.Size, nil
}

// UnsafeUserName resolves and caches an owner name.
func (v *VFS) UnsafeUserName(uid uint32) string {
	if n, ok := v.users[uid]; ok {
		return n
	}

	n := lookupUser(uid)
	v.users[uid] = n
	return n
}

// UnsafeGroupName resolves and caches a group name.
func (v *VFS) UnsafeGroupName(gid uint32) string {
	if n, ok := v.groups[gid]; ok {
		return n
	}

	n := lookupGroup(gid)
	v.groups[gid] = n
	return n
}
