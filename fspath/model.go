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

package fspath

import "strings"

// Path is an immutable, normalized filesystem path.
// The zero value is the empty relative path.
type Path struct {
	parts []string
	abs   bool
}

// Parse builds a Path from a raw string. `~` components are kept literal,
// see ParseHome for the expanding variant.
func Parse(s string) Path {
	return parse(s, "")
}

// ParseHome builds a Path from a raw string, expanding a `~` component into
// `home/<user>`. An empty user keeps `~` literal.
func ParseHome(s, user string) Path {
	return parse(s, user)
}

func parse(s, user string) Path {
	var p Path

	p.abs = strings.HasPrefix(s, "/")

	for _, c := range strings.Split(s, "/") {
		switch {
		case c == "" || c == ".":
		case c == "~" && user != "":
			p.parts = append(p.parts, "home", user)
		default:
			p.parts = appendPart(p.parts, c)
		}
	}

	return p
}

// appendPart applies the normalization rule for one component: `..` pops the
// previous component unless it is itself a `..`, `.` is dropped, everything
// else is kept.
func appendPart(parts []string, c string) []string {
	if c == ".." && len(parts) > 0 && parts[len(parts)-1] != ".." {
		return parts[:len(parts)-1]
	} else if c == "." {
		return parts
	}
	return append(parts, c)
}

// IsAbs returns whether the path is absolute.
func (p Path) IsAbs() bool {
	return p.abs
}

// Count returns the number of components.
func (p Path) Count() int {
	return len(p.parts)
}

// Empty returns whether the path has no component.
func (p Path) Empty() bool {
	return len(p.parts) == 0
}

// Parts returns a copy of the components, root first.
func (p Path) Parts() []string {
	out := make([]string, len(p.parts))
	copy(out, p.parts)
	return out
}

// Base returns the last component, or an empty string for an empty path.
func (p Path) Base() string {
	if len(p.parts) == 0 {
		return ""
	}
	return p.parts[len(p.parts)-1]
}
