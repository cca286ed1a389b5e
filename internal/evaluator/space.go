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

var tmpSpaceScore = Score{}

// evaluateSpace penalizes squares us cannot safely contest and, once enough
// minor/major material remains on the board, rewards uncontested control of
// the big centre block. Grounded on
// original_source/src/evaluate.c's evaluateSpace().
func (e *Evaluator) evaluateSpace(us Color) *Score {
	tmpSpaceScore.MidGameValue = 0
	tmpSpaceScore.EndGameValue = 0

	them := us.Flip()
	friendly := e.position.OccupiedBb(us)
	enemy := e.position.OccupiedBb(them)

	// squares we reach but the enemy controls more thoroughly, and we have
	// no pawn support of our own there
	uncontrolled := e.attack.AttackedBy2[them] & e.attack.All[us] &^
		e.attack.AttackedBy2[us] &^ e.attack.Piece[us][Pawn]

	restrictedPieces := (uncontrolled & (friendly | enemy)).PopCount()
	tmpSpaceScore.MidGameValue -= config.Settings.Eval.SpaceRestrictPieceMg * int16(restrictedPieces)
	tmpSpaceScore.EndGameValue -= config.Settings.Eval.SpaceRestrictPieceEg * int16(restrictedPieces)

	restrictedEmpty := (uncontrolled &^ friendly &^ enemy).PopCount()
	tmpSpaceScore.MidGameValue -= config.Settings.Eval.SpaceRestrictEmptyMg * int16(restrictedEmpty)
	tmpSpaceScore.EndGameValue -= config.Settings.Eval.SpaceRestrictEmptyEg * int16(restrictedEmpty)

	minorsAndMajors := e.position.PiecesBb(White, Knight) | e.position.PiecesBb(Black, Knight) |
		e.position.PiecesBb(White, Bishop) | e.position.PiecesBb(Black, Bishop)
	majors := e.position.PiecesBb(White, Rook) | e.position.PiecesBb(Black, Rook) |
		e.position.PiecesBb(White, Queen) | e.position.PiecesBb(Black, Queen)
	materialWeight := minorsAndMajors.PopCount() + 2*majors.PopCount()
	if materialWeight > 12 {
		centerControl := (^e.attack.All[them] & (e.attack.All[us] | friendly) & CenterBigMasks()).PopCount()
		tmpSpaceScore.MidGameValue += config.Settings.Eval.SpaceCenterControlMg * int16(centerControl)
		tmpSpaceScore.EndGameValue += config.Settings.Eval.SpaceCenterControlEg * int16(centerControl)
	}

	return &tmpSpaceScore
}
