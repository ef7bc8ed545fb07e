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

// queue is a FIFO built from two stacks: pushes go on one, pops come from
// the other, and a lazy reversal spills the push stack when the pop stack
// runs dry. Each element is moved at most twice, so the amortized cost per
// operation is O(1).
type queue[T any] struct {
	push []T
	pop  []T
}

func (q *queue[T]) empty() bool {
	return len(q.push) == 0 && len(q.pop) == 0
}

func (q *queue[T]) size() int {
	return len(q.push) + len(q.pop)
}

func (q *queue[T]) pushBack(v T) {
	q.push = append(q.push, v)
}

func (q *queue[T]) popFront() T {
	q.spill()

	n := len(q.pop) - 1
	v := q.pop[n]

	var zero T
	q.pop[n] = zero
	q.pop = q.pop[:n]

	return v
}

// spill reverses the push stack onto the pop stack when the latter is empty.
func (q *queue[T]) spill() {
	if len(q.pop) > 0 {
		return
	}

	var zero T

	for n := len(q.push) - 1; n >= 0; n-- {
		q.pop = append(q.pop, q.push[n])
		q.push[n] = zero
	}

	q.push = q.push[:0]
}
