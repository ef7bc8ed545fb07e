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
	"os/exec"
	"strings"

	liberr "github.com/nabbar/golib/errors"
)

// shellQuote wraps a string in single quotes, escaping embedded single
// quotes, so it can be spliced into a shell command line.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// execShell runs a shell command, merging stderr into the output, and
// guarantees a trailing newline. An empty dir runs in the server's working
// directory.
func execShell(cmdline, dir string) (string, liberr.Error) {
	c := exec.Command("sh", "-c", cmdline+" 2>&1")
	c.Dir = dir

	out, e := c.Output()
	if e != nil {
		// A non-zero exit is still a reply (ping to an unreachable host,
		// grep with no match); only a command that could not run fails.
		if _, ok := e.(*exec.ExitError); !ok {
			return "", ErrorExec.Error(e)
		}
	}

	s := string(out)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	return s, nil
}
