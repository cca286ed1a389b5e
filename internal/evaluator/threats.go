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

var tmpThreatsScore = Score{}

// evaluateThreats scores pieces of side us that sit poorly defended and
// within reach of a weaker enemy piece, plus safe pawn pushes that newly
// threaten an enemy piece. Grounded on
// original_source/src/evaluate.c's evaluateThreats().
func (e *Evaluator) evaluateThreats(us Color) *Score {
	tmpThreatsScore.MidGameValue = 0
	tmpThreatsScore.EndGameValue = 0

	them := us.Flip()
	friendly := e.position.OccupiedBb(us)
	enemy := e.position.OccupiedBb(them)
	occupied := friendly | enemy

	pawns := friendly & e.position.PiecesBb(us, Pawn)
	knights := friendly & e.position.PiecesBb(us, Knight)
	bishops := friendly & e.position.PiecesBb(us, Bishop)
	rooks := friendly & e.position.PiecesBb(us, Rook)
	queens := friendly & e.position.PiecesBb(us, Queen)
	minors := knights | bishops

	attacksByPawns := e.attack.Piece[them][Pawn]
	attacksByMinors := e.attack.Piece[them][Knight] | e.attack.Piece[them][Bishop]
	attacksByMajors := e.attack.Piece[them][Rook] | e.attack.Piece[them][Queen]
	attacksByKing := e.attack.Piece[them][King]

	// squares with more attackers, few defenders, no pawn support
	poorlyDefended := (e.attack.All[them] &^ e.attack.All[us]) |
		(e.attack.AttackedBy2[them] &^ e.attack.AttackedBy2[us] &^ e.attack.Piece[us][Pawn])

	weakMinors := minors & poorlyDefended

	// a friendly minor or major is overloaded if attacked and defended by exactly one
	overloaded := (knights | bishops | rooks | queens) &
		e.attack.All[us] &^ e.attack.AttackedBy2[us] &
		e.attack.All[them] &^ e.attack.AttackedBy2[them]

	rank3 := Rank3_Bb
	if us == Black {
		rank3 = Rank6_Bb
	}
	forward := us.MoveDirection()
	pushThreat := ShiftBitboard(pawns, forward) &^ occupied
	pushThreat |= ShiftBitboard(pushThreat&^attacksByPawns&rank3, forward) &^ occupied
	pushThreat &^= attacksByPawns
	pushThreat &= e.attack.All[us] | ^e.attack.All[them]
	ourPawnAttacks := e.attack.Piece[us][Pawn]
	var pushTargets Bitboard
	bb := pushThreat
	for bb != BbZero {
		sq := bb.PopLsb()
		pushTargets |= GetPawnAttacks(us, sq)
	}
	pushThreat = pushTargets & enemy &^ ourPawnAttacks

	add := func(mg, eg int16, n int) {
		tmpThreatsScore.MidGameValue += mg * int16(n)
		tmpThreatsScore.EndGameValue += eg * int16(n)
	}

	add(config.Settings.Eval.ThreatWeakPawnMalusMg, config.Settings.Eval.ThreatWeakPawnMalusEg,
		-(pawns &^ attacksByPawns & poorlyDefended).PopCount())
	add(config.Settings.Eval.ThreatMinorByPawnMalusMg, config.Settings.Eval.ThreatMinorByPawnMalusEg,
		-(minors & attacksByPawns).PopCount())
	add(config.Settings.Eval.ThreatMinorByMinorMalusMg, config.Settings.Eval.ThreatMinorByMinorMalusEg,
		-(minors & attacksByMinors).PopCount())
	add(config.Settings.Eval.ThreatMinorByMajorMalusMg, config.Settings.Eval.ThreatMinorByMajorMalusEg,
		-(weakMinors & attacksByMajors).PopCount())
	add(config.Settings.Eval.ThreatRookByLesserMalusMg, config.Settings.Eval.ThreatRookByLesserMalusEg,
		-(rooks & (attacksByPawns | attacksByMinors)).PopCount())
	add(config.Settings.Eval.ThreatMinorByKingMalusMg, config.Settings.Eval.ThreatMinorByKingMalusEg,
		-(weakMinors & attacksByKing).PopCount())
	add(config.Settings.Eval.ThreatRookByKingMalusMg, config.Settings.Eval.ThreatRookByKingMalusEg,
		-(rooks & poorlyDefended & attacksByKing).PopCount())
	add(config.Settings.Eval.ThreatQueenByOneMalusMg, config.Settings.Eval.ThreatQueenByOneMalusEg,
		-(queens & e.attack.All[them]).PopCount())
	add(config.Settings.Eval.ThreatOverloadedMalusMg, config.Settings.Eval.ThreatOverloadedMalusEg,
		-overloaded.PopCount())
	add(config.Settings.Eval.ThreatByPawnPushBonusMg, config.Settings.Eval.ThreatByPawnPushBonusEg,
		pushThreat.PopCount())

	return &tmpThreatsScore
}
