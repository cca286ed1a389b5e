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

var tmpClosednessScore = Score{}

// openFileCount returns how many of the eight files hold no pawn at all.
func openFileCount(pawns Bitboard) int {
	count := 0
	for f := FileA; f <= FileH; f++ {
		if f.Bb()&pawns == BbZero {
			count++
		}
	}
	return count
}

// evaluateClosedness rewards knights and penalizes rooks (or the reverse)
// according to how blocked the pawn structure is - knights thrive in closed
// positions where rooks have no open lines. Grounded on
// original_source/src/evaluate.c's evaluateClosedness().
func (e *Evaluator) evaluateClosedness() *Score {
	tmpClosednessScore.MidGameValue = 0
	tmpClosednessScore.EndGameValue = 0

	whitePawns := e.position.PiecesBb(White, Pawn)
	blackPawns := e.position.PiecesBb(Black, Pawn)
	allPawns := whitePawns | blackPawns

	rammedPawns := (ShiftBitboard(blackPawns, South) & whitePawns).PopCount()

	closedness := allPawns.PopCount() + 3*rammedPawns - 4*openFileCount(allPawns)
	closedness /= 3
	if closedness < 0 {
		closedness = 0
	}
	if closedness > 8 {
		closedness = 8
	}

	knightDiff := int16(e.position.PiecesBb(White, Knight).PopCount() - e.position.PiecesBb(Black, Knight).PopCount())
	rookDiff := int16(e.position.PiecesBb(White, Rook).PopCount() - e.position.PiecesBb(Black, Rook).PopCount())

	tmpClosednessScore.MidGameValue += knightDiff * config.Settings.Eval.ClosednessKnightAdjustmentMg[closedness]
	tmpClosednessScore.EndGameValue += knightDiff * config.Settings.Eval.ClosednessKnightAdjustmentEg[closedness]
	tmpClosednessScore.MidGameValue += rookDiff * config.Settings.Eval.ClosednessRookAdjustmentMg[closedness]
	tmpClosednessScore.EndGameValue += rookDiff * config.Settings.Eval.ClosednessRookAdjustmentEg[closedness]

	return &tmpClosednessScore
}
