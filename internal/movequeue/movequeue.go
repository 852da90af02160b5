/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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
 */

// Package movequeue provides a thread-safe FIFO of root moves, backed by
// github.com/gammazero/deque. It is used to hand out root moves one at a
// time to a pool of search workers during a parallel root search: workers
// pop from the front as they become free, so a worker that finishes a
// cheap move quickly picks up the next one instead of sitting idle until
// a barrier.
package movequeue

import (
	"sync"

	"github.com/gammazero/deque"

	. "github.com/corvid-chess/corvid/internal/types"
)

// Queue is a synchronized FIFO of moves.
type Queue struct {
	mu sync.Mutex
	dq *deque.Deque[Move]
}

// New creates an empty queue, optionally pre-sized.
func New(capacity int) *Queue {
	if capacity > 0 {
		return &Queue{dq: deque.New[Move](capacity)}
	}
	return &Queue{dq: deque.New[Move]()}
}

// Fill resets the queue and pushes every move from moves, in order.
func (q *Queue) Fill(moves []Move) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dq.Clear()
	for _, m := range moves {
		q.dq.PushBack(m)
	}
}

// Next pops the move at the front of the queue. The second return value
// is false once the queue has been drained.
func (q *Queue) Next() (Move, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.dq.Len() == 0 {
		return MoveNone, false
	}
	return q.dq.PopFront(), true
}

// Len returns the number of moves still queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dq.Len()
}
