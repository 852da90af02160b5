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

package movequeue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvid-chess/corvid/internal/types"
)

func TestQueue_FillAndDrain(t *testing.T) {
	q := New(0)
	assert.EqualValues(t, 0, q.Len())

	moves := []Move{Move(1), Move(2), Move(3)}
	q.Fill(moves)
	assert.EqualValues(t, 3, q.Len())

	for _, want := range moves {
		got, ok := q.Next()
		assert.True(t, ok)
		assert.EqualValues(t, want, got)
	}

	_, ok := q.Next()
	assert.False(t, ok)
}

func TestQueue_FillResets(t *testing.T) {
	q := New(4)
	q.Fill([]Move{Move(1), Move(2)})
	q.Fill([]Move{Move(9)})

	assert.EqualValues(t, 1, q.Len())
	m, ok := q.Next()
	assert.True(t, ok)
	assert.EqualValues(t, Move(9), m)
}

func TestQueue_ConcurrentDrain(t *testing.T) {
	const n = 200
	q := New(n)
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = Move(i + 1)
	}
	q.Fill(moves)

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[Move]bool, n)

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				m, ok := q.Next()
				if !ok {
					return
				}
				mu.Lock()
				seen[m] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, n, len(seen))
	assert.EqualValues(t, 0, q.Len())
}
