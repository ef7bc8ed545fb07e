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

type item[T comparable] struct {
	tag T
	job Job
}

// subqueue is one worker's private queue. Producers only contend on the
// subqueue of the worker the tag maps to.
type subqueue[T comparable] struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    queue[item[T]]
}

type pl[T comparable] struct {
	sub []*subqueue[T]

	mapMu      sync.Mutex
	mapped     map[T]int
	lastMapped int

	stopped libatm.Value[bool]
	wg      sync.WaitGroup

	log func() *logrus.Entry
}

func (p *pl[T]) Schedule(tag T, job Job) {
	p.mapMu.Lock()
	idx, ok := p.mapped[tag]
	if !ok {
		p.lastMapped = (p.lastMapped + 1) % len(p.sub)
		idx = p.lastMapped
		p.mapped[tag] = idx
	}
	p.mapMu.Unlock()

	s := p.sub[idx]

	s.mu.Lock()
	s.q.pushBack(item[T]{tag: tag, job: job})
	s.mu.Unlock()

	s.cond.Signal()
}

func (p *pl[T]) Join() {
	p.stopped.Store(true)

	for _, s := range p.sub {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	}

	p.wg.Wait()
}

// worker consumes its subqueue until the pool is stopped and the subqueue
// has drained.
func (p *pl[T]) worker(idx int) {
	defer p.wg.Done()

	s := p.sub[idx]

	for {
		s.mu.Lock()
		for s.q.empty() && !p.stopped.Load() {
			s.cond.Wait()
		}

		if s.q.empty() {
			s.mu.Unlock()
			return
		}

		it := s.q.popFront()
		s.mu.Unlock()

		p.run(it)
	}
}

// run shields the worker from a panicking job so the pool stays alive.
func (p *pl[T]) run(it item[T]) {
	defer func() {
		if r := recover(); r != nil {
			if p.log != nil {
				p.log().WithField("tag", it.tag).WithField("recovered", r).Error("job panic recovered")
			}
		}
	}()

	it.job()
}
