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

package session

import (
	"sort"
	"sync"
)

// Registry counts active logged-in sessions per user, across all
// connections. It is shared by every worker and guarded by one mutex.
type Registry struct {
	m      sync.Mutex
	logged map[string]uint
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		logged: make(map[string]uint),
	}
}

func (r *Registry) increment(user string) {
	r.m.Lock()
	defer r.m.Unlock()
	r.logged[user]++
}

func (r *Registry) decrement(user string) {
	r.m.Lock()
	defer r.m.Unlock()

	if r.logged[user] > 0 {
		r.logged[user]--
	}
}

// Count returns the number of active sessions for one user.
func (r *Registry) Count(user string) uint {
	r.m.Lock()
	defer r.m.Unlock()
	return r.logged[user]
}

// Active returns the users with at least one active session, in key-sorted
// order.
func (r *Registry) Active() []string {
	r.m.Lock()
	defer r.m.Unlock()

	out := make([]string, 0, len(r.logged))
	for u, n := range r.logged {
		if n > 0 {
			out = append(out, u)
		}
	}

	sort.Strings(out)
	return out
}
