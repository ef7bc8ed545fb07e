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

package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	liberr "github.com/nabbar/golib/errors"
)

// Load reads and validates a configuration file, creating the base and
// temporary directories when missing.
func Load(path string) (*Config, liberr.Error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, ErrorFileRead.Error(e)
	}
	defer func() { _ = f.Close() }()

	c := &Config{
		Users: make(map[string]string),
	}

	sc := bufio.NewScanner(f)
	nline := 0

	for sc.Scan() {
		nline++
		if err := parseLine(c, path, nline, sc.Text()); err != nil {
			return nil, err
		}
	}

	if e = sc.Err(); e != nil {
		return nil, ErrorFileRead.Error(e)
	}

	if c.Port == 0 || c.Base == "" {
		return nil, ErrorIncomplete.Error(nil)
	}

	if e = os.MkdirAll(c.Base, 0775); e != nil {
		return nil, ErrorBaseDir.Error(e)
	}

	if e = os.MkdirAll(c.TempDir(), 0775); e != nil {
		return nil, ErrorTempDir.Error(e)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func parseLine(c *Config, path string, nline int, line string) liberr.Error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch kw := fields[0]; {
	case strings.HasPrefix(kw, "#"):
		return nil

	case kw == "base":
		if len(fields) != 2 {
			return syntaxError(path, nline, "`base` keyword expects one string")
		}

		base := fields[1]
		if !filepath.IsAbs(base) {
			cwd, e := os.Getwd()
			if e != nil {
				return ErrorSyntax.Error(e)
			}
			base = filepath.Join(cwd, base)
		}

		c.Base = filepath.Clean(base)
		return nil

	case kw == "port":
		if len(fields) != 2 {
			return syntaxError(path, nline, "`port` keyword expects one int")
		}

		p, e := strconv.ParseUint(fields[1], 10, 16)
		if e != nil {
			return syntaxError(path, nline, "`port` keyword expects one int")
		}

		c.Port = uint16(p)
		return nil

	case kw == "user":
		if len(fields) != 3 {
			return syntaxError(path, nline, "`user` keyword expects two strings")
		}

		c.Users[fields[1]] = fields[2]
		return nil

	default:
		return syntaxError(path, nline, "can't understand keyword `"+kw+"`")
	}
}

func syntaxError(path string, nline int, msg string) liberr.Error {
	//nolint #goerr113
	return ErrorSyntax.Error(fmt.Errorf("%s:%d, %s", path, nline, msg))
}
