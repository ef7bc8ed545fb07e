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
	"os/user"
	"strconv"

	liberr "github.com/nabbar/golib/errors"
	fspath "github.com/sabouaram/remotefs/fspath"
)

// unsafeMissing returns how many trailing components of the path do not
// exist in the tree (0 means the full path exists).
func (v *VFS) unsafeMissing(p fspath.Path) int {
	e := v.root
	parts := p.Parts()

	for i, part := range parts {
		c := e.lookup(part)
		if c == nil {
			return len(parts) - i
		}
		e = c
	}

	return 0
}

// unsafeInsert adds one node, creating intermediate directories, and bumps
// the aggregates of every proper ancestor. Directories contribute no size.
func (v *VFS) unsafeInsert(p fspath.Path, st Status, isDir bool) {
	parts := p.Parts()
	if len(parts) == 0 {
		return
	}

	delta := st.Size
	if isDir {
		delta = 0
	}

	e := v.root
	for _, part := range parts[:len(parts)-1] {
		e.Size += delta
		e.RecChildren++
		e = e.child(part)
		e.Kind = KindDirectory
	}
	e.Size += delta
	e.RecChildren++

	n := e.child(parts[len(parts)-1])
	n.Status = st

	if isDir {
		n.Kind = KindDirectory
		n.Size = 0
		n.RecChildren = 0
	} else {
		n.Kind = KindFile
		n.Size = st.Size
		n.RecChildren = 0
	}
}

// unsafeRemove detaches a subtree and subtracts its aggregates from every
// proper ancestor. The root itself cannot be removed.
func (v *VFS) unsafeRemove(p fspath.Path) liberr.Error {
	node, err := v.UnsafeEntry(p)
	if err != nil {
		return err
	}

	parts := p.Parts()
	if len(parts) == 0 {
		return ErrorNotFound.Errorf(p.String())
	}

	e := v.root
	for _, part := range parts {
		e.Size -= node.Size
		e.RecChildren -= node.RecChildren + 1

		if e.lookup(part) == node {
			delete(e.Children, part)
			break
		}

		e = e.lookup(part)
	}

	return nil
}

func lookupUser(uid uint32) string {
	u, e := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if e != nil {
		return ""
	}
	return u.Username
}

func lookupGroup(gid uint32) string {
	g, e := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if e != nil {
		return ""
	}
	return g.Name
}
