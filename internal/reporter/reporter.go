/*
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

// Package reporter defines the callback surface the search engine uses to
// stream progress to whatever is driving it. This is kept as a separate
// package (rather than living inside search) so an external collaborator
// (a command line front end, a test harness, a protocol adapter) can hold a
// reference to Search without Search importing its driver in turn - Go
// does not allow that import cycle.
package reporter

import (
	"time"

	"github.com/corvid-chess/corvid/internal/moveslice"
	. "github.com/corvid-chess/corvid/internal/types"
)

// Reporter receives streamed progress from a running search. A nil Reporter
// is valid throughout the search package; callers that don't set one simply
// get no callbacks and the search falls back to logging internally.
type Reporter interface {
	// ReportReady is called once initialization (opening caches, sizing the
	// transposition table, ...) has completed.
	ReportReady()

	// ReportInfo delivers a free form status line.
	ReportInfo(info string)

	// ReportSearchUpdate is sent periodically (at most once a second) while
	// a search is in progress.
	ReportSearchUpdate(depth, seldepth int, nodes, nps uint64, time time.Duration, hashfull int)

	// ReportCurrentRootMove reports which root move is currently being
	// searched and its index among the root move list.
	ReportCurrentRootMove(currMove Move, moveNumber int)

	// ReportCurrentLine reports the line currently being searched.
	ReportCurrentLine(moveList moveslice.MoveSlice)

	// ReportIterationEnd is sent after each completed iterative deepening
	// iteration.
	ReportIterationEnd(depth, seldepth int, value Value, nodes, nps uint64, time time.Duration, pv moveslice.MoveSlice)

	// ReportAspirationResearch is sent whenever an aspiration window search
	// fails high or low and needs a re-search, naming which bound failed.
	ReportAspirationResearch(depth, seldepth int, value Value, bound string, nodes, nps uint64, time time.Duration, pv moveslice.MoveSlice)

	// ReportResult delivers the final best move (and, if found, a move to
	// ponder on) once the search has stopped.
	ReportResult(bestMove Move, ponderMove Move)
}
