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

// RawArg is one token of a command line before type conversion, with the
// information of whether it was quoted.
type RawArg struct {
	Value  string
	Quoted bool
}

// Parse splits one raw line into the command name and its raw arguments.
//
// Tokens are separated by ASCII whitespace. A token starting with `'` runs
// to the next `'` with no escaping; a token starting with `"` runs to the
// next `"` not preceded by a backslash. Outer quotes are stripped. Empty
// tokens are discarded. The returned name is empty when the line holds no
// token.
func Parse(line string) (name string, args []RawArg) {
	i := skipSpaces(0, line)
	j := skipWord(i, line)
	name = line[i:j]
	i = j

	for i < len(line) {
		i = skipSpaces(i, line)
		if i >= len(line) {
			break
		}

		var a RawArg
		a, i = nextArg(i, line)

		if a.Value != "" {
			args = append(args, a)
		}
	}

	return name, args
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipSpaces returns the index of the first non-space byte at or after i.
func skipSpaces(i int, s string) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// skipWord returns the index of the first space byte at or after i.
func skipWord(i int, s string) int {
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return i
}

// nextArg extracts one token starting at a non-space byte.
func nextArg(i int, s string) (RawArg, int) {
	switch s[i] {
	case '\'':
		j := i + 1
		for j < len(s) && s[j] != '\'' {
			j++
		}
		return RawArg{Value: s[i+1 : j], Quoted: true}, j + 1

	case '"':
		j := i + 1
		for j < len(s) && !(s[j] == '"' && s[j-1] != '\\') {
			j++
		}
		return RawArg{Value: s[i+1 : j], Quoted: true}, j + 1

	default:
		j := skipWord(i, s)
		return RawArg{Value: s[i:j]}, j
	}
}
