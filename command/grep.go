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
	"bufio"
	"regexp"
	"sort"
	"strings"

	liberr "github.com/nabbar/golib/errors"
	fspath "github.com/sabouaram/remotefs/fspath"
	libvfs "github.com/sabouaram/remotefs/vfs"
)

const (
	// grepMaxPattern is the longest pattern handled in process.
	grepMaxPattern = 8
	// grepMaxChildren bounds the subtree node count for in-process search.
	grepMaxChildren = 100
	// grepMaxSize bounds the aggregated subtree size for in-process search.
	grepMaxSize = 100 * 0xffff
)

// cmdGrep returns the relative path of every visible file under the working
// directory whose content has a line matching the pattern.
//
// Small subtrees (decided in O(1) from the aggregated metadata) are walked
// in process; anything bigger is delegated to the system grep.
type cmdGrep struct{}

func init() {
	Register("grep", func() Command { return &cmdGrep{} })
}

func (c *cmdGrep) Name() string {
	return "grep"
}

func (c *cmdGrep) Middleware() Middleware {
	return MiddlewareLoggedIn
}

func (c *cmdGrep) Spec() Spec {
	return Spec{ArgPattern}
}

func (c *cmdGrep) Execute(e Env, args Args) liberr.Error {
	pattern := args[0].String()

	if c.small(e, pattern) {
		return c.walk(e, pattern)
	}

	return c.shell(e, pattern)
}

// small applies the in-process heuristic against the aggregated metadata of
// the working directory.
func (c *cmdGrep) small(e Env, pattern string) bool {
	e.FS.Lock()
	defer e.FS.Unlock()

	ent, err := e.FS.UnsafeEntry(e.Sess.Cwd())
	if err != nil {
		return true
	}

	return len(pattern) <= grepMaxPattern &&
		ent.RecChildren <= grepMaxChildren &&
		ent.Size <= grepMaxSize
}

func (c *cmdGrep) walk(e Env, pattern string) liberr.Error {
	re, err := regexp.Compile(".*" + pattern + ".*")
	if err != nil {
		return ErrorBadPattern.Error(err)
	}

	var matched []string

	e.FS.Lock()

	ent, ferr := e.FS.UnsafeEntry(e.Sess.Cwd())
	if ferr != nil {
		e.FS.Unlock()
		return ferr
	}

	c.walkEntry(e, ent, e.Sess.Cwd(), fspath.Path{}, re, &matched)
	e.FS.Unlock()

	coll := newCollator()
	sort.Slice(matched, func(i, j int) bool {
		return coll.CompareString(matched[i], matched[j]) < 0
	})

	var b strings.Builder
	for _, m := range matched {
		b.WriteString(m)
		b.WriteByte('\n')
	}

	return e.Sock.WriteString(b.String())
}

// walkEntry recurses depth first under the cache lock, recording the
// relative path of each file whose content matches.
func (c *cmdGrep) walkEntry(e Env, ent *libvfs.Entry, from, rel fspath.Path, re *regexp.Regexp, matched *[]string) {
	for name, child := range ent.Children {
		if libvfs.IsHidden(name) {
			continue
		}

		if child.IsDir() {
			c.walkEntry(e, child, from.JoinPart(name), rel.JoinPart(name), re, matched)
			continue
		}

		if c.fileMatches(e, from.JoinPart(name), re) {
			*matched = append(*matched, rel.JoinPart(name).String())
		}
	}
}

func (c *cmdGrep) fileMatches(e Env, p fspath.Path, re *regexp.Regexp) bool {
	f, _, err := e.FS.UnsafeRead(p)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if re.MatchString(sc.Text()) {
			return true
		}
	}

	return false
}

// shell delegates to the system grep, with the pattern safely quoted and
// the temporary directory excluded. It runs from the working directory so
// the reported paths stay relative.
func (c *cmdGrep) shell(e Env, pattern string) liberr.Error {
	dir := e.FS.Abs(e.Sess.Cwd())

	out, err := execShell(
		"grep -Rl -E --exclude-dir="+libvfs.TempDirName+" "+shellQuote(pattern)+" .",
		dir,
	)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		line = strings.TrimPrefix(line, "./")
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return e.Sock.WriteString(b.String())
}
