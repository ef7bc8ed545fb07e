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

package pool

import (
	"sync"

	libatm "github.com/nabbar/golib/atomic"
	"github.com/sirupsen/logrus"
)

// Job is a unit of work scheduled onto the pool.
type Job func()

// Pool schedules tagged jobs over a fixed set of workers.
type Pool[T comparable] interface {
	// Schedule enqueues a job. The first job of a tag binds the tag to a
	// worker round-robin; every later job of that tag lands on the same
	// worker, behind the previous ones.
	Schedule(tag T, job Job)

	// Join stops the pool and blocks until every job scheduled before the
	// call has finished. Scheduling after Join is undefined.
	Join()
}

// New starts a pool of n workers. A job that panics is logged and the worker
// keeps consuming its subqueue.
func New[T comparable](n int, log func() *logrus.Entry) Pool[T] {
	if n < 1 {
		n = 1
	}

	p := &pl[T]{
		sub:     make([]*subqueue[T], n),
		mapped:  make(map[T]int),
		stopped: libatm.NewValue[bool](),
		log:     log,
	}

	for i := range p.sub {
		s := &subqueue[T]{}
		s.cond = sync.NewCond(&s.mu)
		p.sub[i] = s
	}

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker(i)
	}

	return p
}
