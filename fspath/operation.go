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

// Join composes the receiver with another path. Composing with an absolute
// path yields that path alone; composing with a relative path appends its
// components one by one, applying the `..` pop rule at each step.
func (p Path) Join(o Path) Path {
	if o.abs {
		return o
	}

	out := Path{
		parts: make([]string, len(p.parts), len(p.parts)+len(o.parts)),
		abs:   p.abs,
	}
	copy(out.parts, p.parts)

	for _, c := range o.parts {
		out.parts = appendPart(out.parts, c)
	}

	return out
}

// JoinPart composes the receiver with a single raw component.
func (p Path) JoinPart(c string) Path {
	out := Path{
		parts: make([]string, len(p.parts), len(p.parts)+1),
		abs:   p.abs,
	}
	copy(out.parts, p.parts)
	out.parts = appendPart(out.parts, c)
	return out
}

// Relative returns a copy of the path with the absolute flag cleared.
func (p Path) Relative() Path {
	return Path{parts: p.parts, abs: false}
}

// ParentTraversal reports whether the running component depth dips below zero
// at any prefix of the path, i.e. whether the path escapes its root.
func (p Path) ParentTraversal() bool {
	depth := 0
	for _, c := range p.parts {
		if c == ".." {
			depth--
		} else {
			depth++
		}
		if depth < 0 {
			return true
		}
	}
	return false
}
