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

package evaluator

import (
	. "github.com/corvid-chess/corvid/internal/config"
	. "github.com/corvid-chess/corvid/internal/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - walk both pawn structures and accumulate the
	// passed/isolated/doubled/backward/chain terms directly into tmpScore
	e.addPawnStructureScore(White, 1)
	e.addPawnStructureScore(Black, -1)

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// addPawnStructureScore evaluates every pawn of color us and adds (sign=1)
// or subtracts (sign=-1) the resulting passed/isolated/doubled/backward/
// chain terms into the shared tmpScore accumulator.
func (e *Evaluator) addPawnStructureScore(us Color, sign int) {
	them := us.Flip()
	ownPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(them, Pawn)

	remaining := ownPawns
	for remaining != BbZero {
		sq := remaining.PopLsb()
		file := sq.FileOf()

		neighbourFiles := sq.NeighbourFilesMask()
		hasNeighbourPawn := neighbourFiles&ownPawns != BbZero

		// passed: no enemy pawn on this file or a neighbouring file ahead
		// of it can ever block or capture it on its way to promotion
		if sq.PassedPawnMask(us)&enemyPawns == BbZero {
			tmpScore.MidGameValue += sign * int(Settings.Eval.PawnPassedMidBonus)
			tmpScore.EndGameValue += sign * int(Settings.Eval.PawnPassedEndBonus)
		}

		// isolated: no own pawn on either neighbouring file at all
		if !hasNeighbourPawn {
			tmpScore.MidGameValue += sign * int(Settings.Eval.PawnIsolatedMidMalus)
			tmpScore.EndGameValue += sign * int(Settings.Eval.PawnIsolatedEndMalus)
		}

		// doubled: another own pawn shares this file
		if (file.Bb()&ownPawns)&^sq.Bb() != BbZero {
			tmpScore.MidGameValue += sign * int(Settings.Eval.PawnDoubledMidMalus)
			tmpScore.EndGameValue += sign * int(Settings.Eval.PawnDoubledEndMalus)
		}

		// supported (pawn chain): defended by an own pawn on an
		// adjoining file one rank behind
		supported := GetPawnAttacks(them, sq)&ownPawns != BbZero
		if supported {
			tmpScore.MidGameValue += sign * int(Settings.Eval.PawnSupportedMidBonus)
			tmpScore.EndGameValue += sign * int(Settings.Eval.PawnSupportedEndBonus)
		}

		// backward: no own pawn on a neighbouring file at this rank or
		// behind to support its advance, and the square in front is
		// covered by an enemy pawn so it cannot safely advance either
		if !supported {
			behindMask := sq.RanksSouthMask()
			if us == Black {
				behindMask = sq.RanksNorthMask()
			}
			hasSupportBehind := neighbourFiles&behindMask&ownPawns != BbZero
			if !hasSupportBehind {
				advanceSq := sq.To(North)
				if us == Black {
					advanceSq = sq.To(South)
				}
				if GetPawnAttacks(us, advanceSq)&enemyPawns != BbZero {
					tmpScore.MidGameValue += sign * int(Settings.Eval.PawnBlockedMidMalus)
					tmpScore.EndGameValue += sign * int(Settings.Eval.PawnBlockedEndMalus)
				}
			}
		}

		// phalanx: an own pawn stands directly beside this one on the
		// same rank, both ready to advance together
		if (sq.To(East).Bb()|sq.To(West).Bb())&ownPawns != BbZero {
			tmpScore.MidGameValue += sign * int(Settings.Eval.PawnPhalanxMidBonus)
			tmpScore.EndGameValue += sign * int(Settings.Eval.PawnPhalanxEndBonus)
		}
	}
}
