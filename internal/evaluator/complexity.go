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

// evaluateComplexity adjusts the endgame half of the score by how likely
// the side ahead is to actually convert: pawns on both flanks and pure pawn
// endgames favour the stronger side, while the adjustment term pulls
// everything else towards a draw. The result never changes which side holds
// the advantage - it only shrinks or grows the magnitude. Grounded on
// original_source/src/evaluate.c's evaluateComplexity().
func (e *Evaluator) evaluateComplexity(eg int16) int16 {
	sign := int16(0)
	switch {
	case eg > 0:
		sign = 1
	case eg < 0:
		sign = -1
	}

	pawns := e.position.PiecesBb(White, Pawn) | e.position.PiecesBb(Black, Pawn)
	pawnsOnBothFlanks := 0
	if pawns&FlankMasks(false) != BbZero && pawns&FlankMasks(true) != BbZero {
		pawnsOnBothFlanks = 1
	}

	hasPieces := e.position.PiecesBb(White, Knight) | e.position.PiecesBb(Black, Knight) |
		e.position.PiecesBb(White, Bishop) | e.position.PiecesBb(Black, Bishop) |
		e.position.PiecesBb(White, Rook) | e.position.PiecesBb(Black, Rook) |
		e.position.PiecesBb(White, Queen) | e.position.PiecesBb(Black, Queen)
	pawnEndgame := 0
	if hasPieces == BbZero {
		pawnEndgame = 1
	}

	complexity := config.Settings.Eval.ComplexityTotalPawnsEg*int16(pawns.PopCount()) +
		config.Settings.Eval.ComplexityPawnFlanksEg*int16(pawnsOnBothFlanks) +
		config.Settings.Eval.ComplexityPawnEndgameEg*int16(pawnEndgame) +
		config.Settings.Eval.ComplexityAdjustmentEg

	limit := eg
	if limit < 0 {
		limit = -limit
	}
	v := complexity
	if v < -limit {
		v = -limit
	}

	return sign * v
}
