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
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// Kind distinguishes the two node flavors of the tree.
type Kind uint8

const (
	KindFile Kind = iota
	KindDirectory
)

// Status is a snapshot of the underlying file metadata, captured at insert
// time.
type Status struct {
	Mode   uint32 // raw st_mode bits
	Nlink  uint64
	Uid    uint32
	Gid    uint32
	Size   int64
	Blocks int64
	MTime  time.Time
}

func statusFromStat(st *unix.Stat_t) Status {
	return Status{
		Mode:   uint32(st.Mode),
		Nlink:  uint64(st.Nlink),
		Uid:    st.Uid,
		Gid:    st.Gid,
		Size:   st.Size,
		Blocks: st.Blocks,
		MTime:  time.Unix(st.Mtim.Unix()),
	}
}

// Entry is one node of the in-memory tree. Nodes are owned by the cache;
// callers may only touch them while holding the cache lock.
type Entry struct {
	// Kind tells whether the node shadows a file or a directory.
	Kind Kind

	// Size is the byte count for files, and the sum of all descendant file
	// sizes for directories.
	Size int64

	// RecChildren counts all descendants, recursively.
	RecChildren int64

	// Status snapshots the on-disk metadata.
	Status Status

	// Children maps names to child nodes; nil for files.
	Children map[string]*Entry
}

// IsDir returns whether the node is a directory.
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// child returns the named child, creating an empty node on first access.
func (e *Entry) child(name string) *Entry {
	if e.Children == nil {
		e.Children = make(map[string]*Entry)
	}

	c, ok := e.Children[name]
	if !ok {
		c = &Entry{}
		e.Children[name] = c
	}

	return c
}

// lookup returns the named child, or nil.
func (e *Entry) lookup(name string) *Entry {
	if e.Children == nil {
		return nil
	}
	return e.Children[name]
}

// IsHidden reports whether a name is hidden from listings and searches.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
