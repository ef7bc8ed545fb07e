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

package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	liberr "github.com/nabbar/golib/errors"
	libvfs "github.com/sabouaram/remotefs/vfs"
	"golang.org/x/sys/unix"
)

// lsQuoteNames controls whether names holding bytes outside the printable
// ASCII range are emitted quoted. Kept off for compatibility with plain
// shell output.
const lsQuoteNames = false

// halfYear is the threshold after which a listing shows the year instead of
// the time of day.
const halfYear = (31556952 / 2) * time.Second

// cmdLs lists the visible children of the working directory in long format,
// names ordered with the locale collation.
type cmdLs struct{}

func init() {
	Register("ls", func() Command { return &cmdLs{} })
}

func (c *cmdLs) Name() string {
	return "ls"
}

func (c *cmdLs) Middleware() Middleware {
	return MiddlewareLoggedIn
}

func (c *cmdLs) Spec() Spec {
	return Spec{}
}

type lsRow struct {
	mode  string
	nlink string
	user  string
	group string
	size  string
	date  string
	name  string
}

type lsWidths struct {
	nlink int
	user  int
	group int
	size  int
}

func (w *lsWidths) update(r lsRow) {
	w.nlink = max(w.nlink, len(r.nlink))
	w.user = max(w.user, len(r.user))
	w.group = max(w.group, len(r.group))
	w.size = max(w.size, len(r.size))
}

func (c *cmdLs) Execute(e Env, _ Args) liberr.Error {
	var (
		rows    []lsRow
		widths  lsWidths
		blocks  int64
		anyQtd  bool
		nowTime = time.Now()
	)

	e.FS.Lock()

	ent, err := e.FS.UnsafeEntry(e.Sess.Cwd())
	if err != nil {
		e.FS.Unlock()
		return err
	}

	for name, child := range ent.Children {
		if libvfs.IsHidden(name) {
			continue
		}

		st := child.Status
		blocks += st.Blocks / 2
		anyQtd = anyQtd || needsQuoting(name)

		r := lsRow{
			mode:  strmode(st.Mode),
			nlink: strconv.FormatUint(st.Nlink, 10),
			user:  e.FS.UnsafeUserName(st.Uid),
			group: e.FS.UnsafeGroupName(st.Gid),
			size:  strconv.FormatInt(st.Size, 10),
			date:  lsDate(st.MTime, nowTime),
			name:  name,
		}

		widths.update(r)
		rows = append(rows, r)
	}

	e.FS.Unlock()

	coll := newCollator()
	sort.Slice(rows, func(i, j int) bool {
		return coll.CompareString(rows[i].name, rows[j].name) < 0
	})

	var b strings.Builder
	b.WriteString("total " + strconv.FormatInt(blocks, 10) + "\n")

	format := fmt.Sprintf("%%s %%%ds %%-%ds %%-%ds %%%ds %%s", widths.nlink, widths.user, widths.group, widths.size)

	for _, r := range rows {
		b.WriteString(fmt.Sprintf(format, r.mode, r.nlink, r.user, r.group, r.size, r.date))
		b.WriteString(lsName(r.name, anyQtd))
		b.WriteByte('\n')
	}

	return e.Sock.WriteString(b.String())
}

// lsName renders the name field, aligning quoted and unquoted names when
// quoting is in use for the listing.
func lsName(name string, anyQuoted bool) string {
	if lsQuoteNames && anyQuoted {
		if needsQuoting(name) {
			return " '" + name + "'"
		}
		return "  " + name
	}
	return " " + name
}

// needsQuoting reports whether a name holds bytes outside 0x21..0x7e.
func needsQuoting(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] <= 0x20 || name[i] >= 0x7f {
			return true
		}
	}
	return false
}

// lsMonths is the fixed month abbreviation table used for dates, regardless
// of the process locale.
var lsMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// lsDate formats a modification time the way a long listing does: time of
// day for recent files, year otherwise.
func lsDate(mtime, now time.Time) string {
	recent := mtime.After(now.Add(-halfYear)) && mtime.Before(now)

	mon := lsMonths[int(mtime.Month())-1]

	if recent {
		return fmt.Sprintf("%s %2d %02d:%02d", mon, mtime.Day(), mtime.Hour(), mtime.Minute())
	}

	return fmt.Sprintf("%s %2d  %d", mon, mtime.Day(), mtime.Year())
}

// strmode renders raw stat mode bits the way `ls -l` does.
func strmode(mode uint32) string {
	var b [10]byte

	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		b[0] = '-'
	case unix.S_IFDIR:
		b[0] = 'd'
	default:
		b[0] = '?'
	}

	rwx := func(off int, r, w, x uint32, special uint32, sc, scx byte) {
		b[off] = '-'
		if mode&r != 0 {
			b[off] = 'r'
		}
		b[off+1] = '-'
		if mode&w != 0 {
			b[off+1] = 'w'
		}
		switch {
		case mode&special != 0 && mode&x != 0:
			b[off+2] = scx
		case mode&special != 0:
			b[off+2] = sc
		case mode&x != 0:
			b[off+2] = 'x'
		default:
			b[off+2] = '-'
		}
	}

	rwx(1, unix.S_IRUSR, unix.S_IWUSR, unix.S_IXUSR, unix.S_ISUID, 'S', 's')
	rwx(4, unix.S_IRGRP, unix.S_IWGRP, unix.S_IXGRP, unix.S_ISGID, 'S', 's')
	rwx(7, unix.S_IROTH, unix.S_IWOTH, unix.S_IXOTH, unix.S_ISVTX, 'T', 't')

	return string(b[:])
}
