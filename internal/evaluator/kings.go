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

var tmpKingScore = Score{}

// evalKing scores the king's pawn shield and - once there is enough material
// attacking the king area to matter - its safety, following the attack-unit
// quadratic from original_source/src/evaluate.c's evaluateKings(): a count
// of weighted threats is squared for the midgame term and taken linearly for
// the endgame term, so safety danger grows much faster than linearly with
// the number of attackers once the king ring is actually under pressure.
func (e *Evaluator) evalKing(c Color) *Score {
	tmpKingScore.MidGameValue = 0
	tmpKingScore.EndGameValue = 0
	us := c
	them := us.Flip()
	kingSq := e.position.KingSquare(us)

	// pawn shield - pawns in front of a castled king get a bonus
	if KingSideCastleMask(us).Has(kingSq) {
		count := int16((ShiftBitboard(KingSideCastleMask(us), us.MoveDirection()) & e.position.PiecesBb(us, Pawn)).PopCount())
		tmpKingScore.MidGameValue += count * config.Settings.Eval.KingCastlePawnShieldBonus
	} else if QueenSideCastMask(us).Has(kingSq) {
		count := int16((ShiftBitboard(QueenSideCastMask(us), us.MoveDirection()) & e.position.PiecesBb(us, Pawn)).PopCount())
		tmpKingScore.MidGameValue += count * config.Settings.Eval.KingCastlePawnShieldBonus
	}

	if !config.Settings.Eval.UseKingSafety || !config.Settings.Eval.UseAttacksInEval {
		return &tmpKingScore
	}

	enemyQueens := e.position.PiecesBb(them, Queen)
	noQueenBonus := 0
	if enemyQueens == BbZero {
		noQueenBonus = 1
	}
	// King safety only matters once there are two attackers, or one
	// attacker with a potential queen joining in.
	if e.attack.KingAttackersCount[them] <= 1-enemyQueens.PopCount() {
		return &tmpKingScore
	}

	kingArea := e.attack.KingArea[us]

	// weak squares: attacked by them, not doubly defended by us, and only
	// defended (if at all) by our queen or king
	weak := e.attack.All[them] &^ e.attack.AttackedBy2[us] &
		(^e.attack.All[us] | e.attack.Piece[us][Queen] | e.attack.Piece[us][King])

	areaSize := kingArea.PopCount()
	scaledAttackCount := 0.0
	if areaSize > 0 {
		scaledAttackCount = 9.0 * float64(e.attack.KingAttacksCount[them]) / float64(areaSize)
	}

	// safe squares for the attacker: not occupied by one of their own
	// pieces, and either undefended by us or weak-and-doubly-attacked
	safe := ^e.position.OccupiedBb(them) & (^e.attack.All[us] | (weak & e.attack.AttackedBy2[them]))

	occupied := e.allPieces
	knightThreats := GetAttacksBb(Knight, kingSq, BbZero)
	bishopThreats := GetAttacksBb(Bishop, kingSq, occupied)
	rookThreats := GetAttacksBb(Rook, kingSq, occupied)
	queenThreats := bishopThreats | rookThreats

	knightChecks := knightThreats & safe & e.attack.Piece[them][Knight]
	bishopChecks := bishopThreats & safe & e.attack.Piece[them][Bishop]
	rookChecks := rookThreats & safe & e.attack.Piece[them][Rook]
	queenChecks := queenThreats & safe & e.attack.Piece[them][Queen]

	count := e.attack.KingAttackersCount[them] * e.attack.KingAttackersWeight[them]
	count += int(float64(config.Settings.Eval.KSAttackValue) * scaledAttackCount)
	count += config.Settings.Eval.KSWeakSquares * (weak & kingArea).PopCount()
	count += config.Settings.Eval.KSFriendlyPawns * (e.position.PiecesBb(us, Pawn) & kingArea &^ weak).PopCount()
	count += config.Settings.Eval.KSNoEnemyQueens * noQueenBonus
	count += config.Settings.Eval.KSSafeQueenCheck * queenChecks.PopCount()
	count += config.Settings.Eval.KSSafeRookCheck * rookChecks.PopCount()
	count += config.Settings.Eval.KSSafeBishopCheck * bishopChecks.PopCount()
	count += config.Settings.Eval.KSSafeKnightCheck * knightChecks.PopCount()
	count += config.Settings.Eval.KSAdjustment

	if count > 0 {
		tmpKingScore.MidGameValue -= int16(count * count / 720)
		tmpKingScore.EndGameValue -= int16(count / 20)
	}

	return &tmpKingScore
}
