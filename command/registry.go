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
	"sort"
	"sync"

	liberr "github.com/nabbar/golib/errors"
)

var (
	regMu  sync.RWMutex
	regMap = make(map[string]Constructor)
)

// Register binds a wire name to a command constructor. It is called from
// the init function of each command file.
func Register(name string, c Constructor) {
	regMu.Lock()
	defer regMu.Unlock()
	regMap[name] = c
}

// Create returns a fresh instance of the named command.
func Create(name string) (Command, liberr.Error) {
	regMu.RLock()
	c, ok := regMap[name]
	regMu.RUnlock()

	if !ok {
		return nil, ErrorCommandNotFound.Errorf(name)
	}

	return c(), nil
}

// Names returns the registered wire names, sorted.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()

	out := make([]string, 0, len(regMap))
	for n := range regMap {
		out = append(out, n)
	}

	sort.Strings(out)
	return out
}
