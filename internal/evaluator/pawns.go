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
	"github.com/frankkopp/FrankyGo/internal/config"
	. "github.com/frankkopp/FrankyGo/pkg/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if config.Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate from scratch and store in the cache below
	var structure Score
	structure.Add(e.pawnStructureEval(White))
	black := *e.pawnStructureEval(Black)
	structure.Sub(&black)

	passed := e.evaluatePassedPawns()

	tmpScore.MidGameValue = structure.MidGameValue + passed.MidGameValue
	tmpScore.EndGameValue = structure.EndGameValue + passed.EndGameValue

	// store in cache
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

var tmpPawnStructureScore = Score{}

// pawnStructureEval evaluates isolated, stacked (doubled), backward and
// connected pawns for one side, grounded on original_source/src/evaluate.c's
// evaluatePawns(): every pawn is classified once against the pawns of both
// colours, scaled with flat per-feature coefficients rather than the
// original's per-rank/per-file tuned tables.
func (e *Evaluator) pawnStructureEval(us Color) *Score {
	tmpPawnStructureScore.MidGameValue = 0
	tmpPawnStructureScore.EndGameValue = 0

	them := us.Flip()
	myPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(them, Pawn)

	bb := myPawns
	for bb != BbZero {
		sq := bb.PopLsb()
		f := sq.FileOf()

		neighborFiles := AdjacentFilesMasks(f) & myPawns

		// isolated - no friendly pawn on either adjacent file at all
		if neighborFiles == BbZero {
			tmpPawnStructureScore.MidGameValue -= config.Settings.Eval.IsolatedPawnMalusMg
			tmpPawnStructureScore.EndGameValue -= config.Settings.Eval.IsolatedPawnMalusEg
		}

		// stacked (doubled) - another friendly pawn further ahead on the same file
		if ForwardFileMasks(us, sq)&myPawns != BbZero {
			tmpPawnStructureScore.MidGameValue -= config.Settings.Eval.StackedPawnMalusMg
			tmpPawnStructureScore.EndGameValue -= config.Settings.Eval.StackedPawnMalusEg
		}

		// connected - supported by a friendly pawn one rank behind on an adjacent file
		isPassed := sq.PassedPawnMask(us)&enemyPawns == BbZero
		if PawnConnectedMasks(us, sq)&myPawns != BbZero {
			tmpPawnStructureScore.MidGameValue += config.Settings.Eval.ConnectedPawnBonusMg
			tmpPawnStructureScore.EndGameValue += config.Settings.Eval.ConnectedPawnBonusEg
		} else if !isPassed && neighborFiles != BbZero {
			// backward - has neighbours but no support and cannot safely advance
			// because the stop square is covered by an enemy pawn
			stop := sq.To(us.MoveDirection())
			if stop.IsValid() && GetPawnAttacks(us, stop)&enemyPawns != BbZero {
				tmpPawnStructureScore.MidGameValue -= config.Settings.Eval.BackwardPawnMalusMg
				tmpPawnStructureScore.EndGameValue -= config.Settings.Eval.BackwardPawnMalusEg
			}
		}

		// candidate passer - not yet passed and not blocked head-on, but the
		// friendly pawns standing on adjacent files at or behind this pawn's
		// rank are enough to win the race against every enemy pawn that could
		// still capture it on its way forward
		if !isPassed && neighborFiles != BbZero && ForwardFileMasks(us, sq)&enemyPawns == BbZero {
			levers := (sq.PassedPawnMask(us) & enemyPawns).PopCount()
			helpers := (AdjacentFilesMasks(f) &^ ForwardRanksMasks(us, sq.RankOf()) & myPawns).PopCount()
			if helpers >= levers {
				tmpPawnStructureScore.MidGameValue += config.Settings.Eval.CandidatePasserBonusMg
				tmpPawnStructureScore.EndGameValue += config.Settings.Eval.CandidatePasserBonusEg
			}
		}
	}

	return &tmpPawnStructureScore
}
