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

// passedPawnBonus is indexed by the pawn's rank as seen from its own side
// (Rank2 .. Rank7), growing sharply as the pawn nears promotion.
var passedPawnBonus = [int(RankLength)]int16{0, 5, 10, 20, 35, 60, 100, 0}

var tmpPassedScore = Score{}

// evaluatePassedPawns grants a bonus per passed pawn that grows with how
// close the pawn is to promoting and is larger in the endgame, where passed
// pawns matter most and kings can no longer rely on piece support alone.
func (e *Evaluator) evaluatePassedPawns() *Score {
	tmpPassedScore.MidGameValue = 0
	tmpPassedScore.EndGameValue = 0

	if !config.Settings.Eval.UsePassedPawn {
		return &tmpPassedScore
	}

	for _, us := range [2]Color{White, Black} {
		them := us.Flip()
		ourPawns := e.position.PiecesBb(us, Pawn)
		theirPawns := e.position.PiecesBb(them, Pawn)
		direction := 1
		if us == Black {
			direction = -1
		}
		bb := ourPawns
		for bb != BbZero {
			sq := bb.PopLsb()
			if sq.PassedPawnMask(us)&theirPawns != BbZero {
				continue
			}
			rank := sq.RankOf()
			if us == Black {
				rank = Rank(int(Rank8) - int(rank))
			}
			bonus := passedPawnBonus[rank]
			tmpPassedScore.MidGameValue += int16(direction) * bonus
			tmpPassedScore.EndGameValue += int16(direction) * (bonus + bonus/2)
		}
	}

	return &tmpPassedScore
}
