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

package pool_test

import (
	"sync"

	libpol "github.com/sabouaram/remotefs/pool"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tagged worker pool", func() {
	Context("per-tag ordering", func() {
		It("should run same-tag jobs in scheduling order", func() {
			p := libpol.New[int](4, nil)

			var mu sync.Mutex
			seen := make([]int, 0, 100)

			for i := 0; i < 100; i++ {
				n := i
				p.Schedule(7, func() {
					mu.Lock()
					seen = append(seen, n)
					mu.Unlock()
				})
			}

			p.Join()

			Expect(seen).To(HaveLen(100))
			for i, n := range seen {
				Expect(n).To(Equal(i))
			}
		})

		It("should interleave distinct tags without losing per-tag order", func() {
			p := libpol.New[int](4, nil)

			var mu sync.Mutex
			perTag := make(map[int][]int)

			for i := 0; i < 50; i++ {
				for tag := 0; tag < 8; tag++ {
					t, n := tag, i
					p.Schedule(t, func() {
						mu.Lock()
						perTag[t] = append(perTag[t], n)
						mu.Unlock()
					})
				}
			}

			p.Join()

			for tag := 0; tag < 8; tag++ {
				Expect(perTag[tag]).To(HaveLen(50))
				for i, n := range perTag[tag] {
					Expect(n).To(Equal(i), "tag %d", tag)
				}
			}
		})
	})

	Context("tag affinity", func() {
		It("should run all jobs of one tag on a single goroutine", func() {
			p := libpol.New[string](8, nil)

			var mu sync.Mutex
			routines := make(map[string]map[uint64]bool)

			for i := 0; i < 40; i++ {
				for _, tag := range []string{"a", "b", "c"} {
					t := tag
					p.Schedule(t, func() {
						mu.Lock()
						if routines[t] == nil {
							routines[t] = make(map[uint64]bool)
						}
						routines[t][goid()] = true
						mu.Unlock()
					})
				}
			}

			p.Join()

			for _, tag := range []string{"a", "b", "c"} {
				Expect(routines[tag]).To(HaveLen(1), "tag %s", tag)
			}
		})
	})

	Context("completion guarantee", func() {
		It("should finish every scheduled job before Join returns", func() {
			p := libpol.New[int](3, nil)

			var mu sync.Mutex
			done := 0

			for i := 0; i < 500; i++ {
				p.Schedule(i%17, func() {
					mu.Lock()
					done++
					mu.Unlock()
				})
			}

			p.Join()

			Expect(done).To(Equal(500))
		})
	})

	Context("robustness", func() {
		It("should survive a panicking job", func() {
			p := libpol.New[int](2, nil)

			var mu sync.Mutex
			ran := false

			p.Schedule(1, func() { panic("boom") })
			p.Schedule(1, func() {
				mu.Lock()
				ran = true
				mu.Unlock()
			})

			p.Join()

			Expect(ran).To(BeTrue())
		})
	})

	Context("construction", func() {
		It("should clamp a non-positive worker count", func() {
			p := libpol.New[int](0, nil)

			doneCh := make(chan struct{})
			p.Schedule(1, func() { close(doneCh) })

			Eventually(doneCh).Should(BeClosed())
			p.Join()
		})
	})
})
