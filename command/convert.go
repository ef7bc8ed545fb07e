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
	"strconv"
	"strings"

	libval "github.com/go-playground/validator/v10"
	liberr "github.com/nabbar/golib/errors"
	fspath "github.com/sabouaram/remotefs/fspath"
	sessns "github.com/sabouaram/remotefs/session"
)

// maxPathLen bounds the canonical length of any client-supplied path after
// composition with the working directory.
const maxPathLen = 128

var vld = libval.New()

// Convert typechecks the raw arguments against a specification, using the
// session for path composition. Arity must match exactly.
func Convert(sess *sessns.Session, spec Spec, raw []RawArg) (Args, liberr.Error) {
	if len(spec) != len(raw) {
		return nil, ErrorArgNumber.Error(nil)
	}

	out := make(Args, 0, len(spec))

	for i, k := range spec {
		a, err := convertOne(sess, k, raw[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

func convertOne(sess *sessns.Session, k ArgKind, raw RawArg) (Arg, liberr.Error) {
	switch k {
	case ArgInt:
		n, e := strconv.Atoi(raw.Value)
		if e != nil {
			return Arg{}, ErrorArgInt.Error(nil)
		}
		return Arg{kind: k, str: raw.Value, num: n}, nil

	case ArgPath:
		p, err := convertPath(sess, raw.Value)
		if err != nil {
			return Arg{}, err
		}
		return Arg{kind: k, str: raw.Value, path: p}, nil

	case ArgHostname:
		if e := vld.Var(raw.Value, "required,hostname_rfc1123"); e != nil {
			return Arg{}, ErrorArgHostname.Error(nil)
		}
		// Every label must also end with a letter or digit.
		for _, l := range strings.Split(raw.Value, ".") {
			if strings.HasSuffix(l, "-") {
				return Arg{}, ErrorArgHostname.Error(nil)
			}
		}
		return Arg{kind: k, str: raw.Value}, nil

	default:
		return Arg{kind: k, str: raw.Value}, nil
	}
}

// convertPath composes a client-supplied path with the working directory,
// forces the result relative to the base directory, and applies the sandbox
// checks.
func convertPath(sess *sessns.Session, raw string) (fspath.Path, liberr.Error) {
	if strings.ContainsRune(raw, 0) {
		return fspath.Path{}, ErrorArgPath.Error(nil)
	}

	arg := fspath.ParseHome(raw, sess.User())

	// An absolute argument replaces the working directory entirely; either
	// way the result is interpreted relative to the base directory.
	p := sess.Cwd().Join(arg).Relative()

	if p.ParentTraversal() {
		return fspath.Path{}, ErrorAccessDenied.Error(nil)
	}

	if p.Len() > maxPathLen {
		return fspath.Path{}, ErrorPathTooLong.Error(nil)
	}

	return p, nil
}
