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
	"os"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	collOnce sync.Once
	collTag  language.Tag
)

// localeTag resolves the process collation locale from the environment
// (LC_ALL, LC_COLLATE, LANG in that order), once.
func localeTag() language.Tag {
	collOnce.Do(func() {
		collTag = language.Und

		for _, k := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
			v := os.Getenv(k)
			if v == "" || v == "C" || v == "POSIX" {
				continue
			}

			// Strip a charset suffix such as `.UTF-8`.
			if i := strings.IndexByte(v, '.'); i >= 0 {
				v = v[:i]
			}

			if t, e := language.Parse(v); e == nil {
				collTag = t
				return
			}
		}
	})

	return collTag
}

// newCollator returns a collator for locale-aware name ordering in listings
// and search results. Collators are not safe for concurrent use, hence one
// per call site.
func newCollator() *collate.Collator {
	return collate.New(localeTag())
}
