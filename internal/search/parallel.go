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

package search

import (
	"github.com/frankkopp/workerpool"

	"github.com/corvid-chess/corvid/internal/config"
	"github.com/corvid-chess/corvid/internal/evaluator"
	"github.com/corvid-chess/corvid/internal/movegen"
	"github.com/corvid-chess/corvid/internal/movequeue"
	"github.com/corvid-chess/corvid/internal/moveslice"
	"github.com/corvid-chess/corvid/internal/position"
	. "github.com/corvid-chess/corvid/internal/types"
)

// parallelRootSearch distributes the root move list across a fixed-size
// worker pool instead of walking it on the calling goroutine. Each worker
// gets its own Position clone and move generators but shares this Search's
// transposition table and history, so later iterations still benefit from
// what earlier, differently-scheduled workers stored. It sits beside
// rootSearch rather than replacing it: the recursive PVS routine
// (s.search/s.qsearch) is untouched and stays single-threaded per call.
func (s *Search) parallelRootSearch(p *position.Position, depth int, alpha Value, beta Value) Value {
	nWorkers := config.Settings.Search.NoOfParallelWorkers
	if nWorkers < 1 {
		nWorkers = 1
	}
	if nWorkers > s.rootMoves.Len() {
		nWorkers = s.rootMoves.Len()
	}

	queue := movequeue.New(s.rootMoves.Len())
	moves := make([]Move, 0, s.rootMoves.Len())
	for i := 0; i < s.rootMoves.Len(); i++ {
		moves = append(moves, s.rootMoves.At(i).MoveOf())
	}
	queue.Fill(moves)

	type rootResult struct {
		move  Move
		value Value
	}
	results := make(chan rootResult, len(moves))

	pool := workerpool.New(nWorkers)
	for i := 0; i < nWorkers; i++ {
		pool.Submit(func() {
			worker := s.newRootWorker()
			for {
				m, ok := queue.Next()
				if !ok {
					return
				}
				clone := *p
				clone.DoMove(m)
				value := -worker.search(&clone, depth-1, 1, -beta, -alpha, true, true)
				clone.UndoMove()
				results <- rootResult{move: m, value: value}
			}
		})
	}
	pool.StopWait()
	close(results)

	bestValue := ValueNA
	bestMove := MoveNone
	for r := range results {
		for i := 0; i < s.rootMoves.Len(); i++ {
			if s.rootMoves.At(i).MoveOf() == r.move {
				s.rootMoves.Set(i, r.move.SetValue(r.value))
				break
			}
		}
		if r.value > bestValue {
			bestValue = r.value
			bestMove = r.move
		}
	}
	if bestMove != MoveNone {
		savePV(bestMove, s.pv[1], s.pv[0])
	}
	return bestValue
}

// newRootWorker builds a Search instance fit to run a single root move's
// subtree: its own move generators and PV/killer/history-consuming state,
// but the parent's shared, already-populated transposition table and
// history so the worker benefits from (and contributes to) the same
// caches the calling Search uses.
func (s *Search) newRootWorker() *Search {
	w := NewSearch()
	w.tt = s.tt
	w.eval = evaluator.NewEvaluator()
	w.history = s.history
	w.searchLimits = s.searchLimits
	w.statistics = Statistics{}

	w.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	w.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		w.mg = append(w.mg, movegen.NewMoveGen())
		w.pv = append(w.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}
	return w
}
