//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration toggles, sizes and tuned coefficients for the evaluation
// pipeline. These are the operator-facing knobs: on/off per pipeline stage,
// the pawn-king cache size, and the term weights a config file may override.
// PSQT tables live next to the evaluator code that uses them, not here.
type evalConfiguration struct {
	UseLazyEval       bool
	LazyEvalThreshold int16

	Tempo int16

	UseMaterialEval   bool
	UsePositionalEval bool

	UsePawnEval   bool
	UsePawnCache  bool
	PawnCacheSize int // MiB
	UsePassedPawn bool

	IsolatedPawnMalusMg int16
	IsolatedPawnMalusEg int16
	StackedPawnMalusMg  int16
	StackedPawnMalusEg  int16
	BackwardPawnMalusMg int16
	BackwardPawnMalusEg int16
	ConnectedPawnBonusMg int16
	ConnectedPawnBonusEg int16
	CandidatePasserBonusMg int16
	CandidatePasserBonusEg int16

	UseAttacksInEval bool
	UseMobility      bool
	MobilityBonus    int16

	UseAdvancedPieceEval bool
	BishopPairBonus      int16
	MinorBehindPawnBonus int16
	BishopPawnMalus      int16
	BishopCenterAimBonus int16
	BishopBlockedMalus   int16
	RookOnQueenFileBonus int16
	RookOnOpenFileBonus  int16
	RookTrappedMalus     int16
	QueenRelativePinMalusMg int16
	QueenRelativePinMalusEg int16

	UseKingEval               bool
	UseKingSafety             bool
	KingCastlePawnShieldBonus int16

	// King safety attack-unit weights, grounded on original_source/src/evaluate.c.
	// count = attackersCount*attackersWeight + KSAttackValue*scaledAttackCount +
	//         KSWeakSquares*weak + KSFriendlyPawns*pawns + KSNoEnemyQueens*noQueens +
	//         KSSafe{Queen,Rook,Bishop,Knight}Check*checks + KSAdjustment
	// malus = (count*count/720, count/20) when count > 0.
	KSAttackValue     int
	KSWeakSquares     int
	KSFriendlyPawns   int
	KSNoEnemyQueens   int
	KSSafeQueenCheck  int
	KSSafeRookCheck   int
	KSSafeBishopCheck int
	KSSafeKnightCheck int
	KSAdjustment      int

	UseThreats                   bool
	ThreatWeakPawnMalusMg        int16
	ThreatWeakPawnMalusEg        int16
	ThreatMinorByPawnMalusMg     int16
	ThreatMinorByPawnMalusEg     int16
	ThreatMinorByMinorMalusMg    int16
	ThreatMinorByMinorMalusEg    int16
	ThreatMinorByMajorMalusMg    int16
	ThreatMinorByMajorMalusEg    int16
	ThreatRookByLesserMalusMg    int16
	ThreatRookByLesserMalusEg    int16
	ThreatMinorByKingMalusMg     int16
	ThreatMinorByKingMalusEg     int16
	ThreatRookByKingMalusMg      int16
	ThreatRookByKingMalusEg      int16
	ThreatQueenByOneMalusMg      int16
	ThreatQueenByOneMalusEg      int16
	ThreatOverloadedMalusMg      int16
	ThreatOverloadedMalusEg      int16
	ThreatByPawnPushBonusMg      int16
	ThreatByPawnPushBonusEg      int16

	UseSpace             bool
	SpaceRestrictPieceMg int16
	SpaceRestrictPieceEg int16
	SpaceRestrictEmptyMg int16
	SpaceRestrictEmptyEg int16
	SpaceCenterControlMg int16
	SpaceCenterControlEg int16

	// UseClosedness gates evaluateClosedness's knight/rook adjustment. The
	// tables are indexed by the closedness index evaluateClosedness computes
	// from pawn count, rammed pawns and open files (0 = fully open,
	// 8 = fully closed). Carried over verbatim from
	// original_source/src/evaluate.c's ClosednessKnightAdjustment/
	// ClosednessRookAdjustment tables rather than flattened to one
	// coefficient, since the per-closedness shape is the point of the term.
	UseClosedness              bool
	ClosednessKnightAdjustmentMg [9]int16
	ClosednessKnightAdjustmentEg [9]int16
	ClosednessRookAdjustmentMg   [9]int16
	ClosednessRookAdjustmentEg   [9]int16

	UseComplexity               bool
	ComplexityTotalPawnsEg       int16
	ComplexityPawnFlanksEg       int16
	ComplexityPawnEndgameEg      int16
	ComplexityAdjustmentEg       int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseLazyEval = true
	Settings.Eval.LazyEvalThreshold = 1200

	Settings.Eval.Tempo = 20

	Settings.Eval.UseMaterialEval = true
	Settings.Eval.UsePositionalEval = true

	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSize = 4
	Settings.Eval.UsePassedPawn = true

	Settings.Eval.IsolatedPawnMalusMg = 5
	Settings.Eval.IsolatedPawnMalusEg = 12
	Settings.Eval.StackedPawnMalusMg = 5
	Settings.Eval.StackedPawnMalusEg = 23
	Settings.Eval.BackwardPawnMalusMg = 9
	Settings.Eval.BackwardPawnMalusEg = 24
	Settings.Eval.ConnectedPawnBonusMg = 5
	Settings.Eval.ConnectedPawnBonusEg = 4
	Settings.Eval.CandidatePasserBonusMg = 8
	Settings.Eval.CandidatePasserBonusEg = 14

	Settings.Eval.UseAttacksInEval = true
	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonus = 2

	Settings.Eval.UseAdvancedPieceEval = true
	Settings.Eval.BishopPairBonus = 30
	Settings.Eval.MinorBehindPawnBonus = 5
	Settings.Eval.BishopPawnMalus = 3
	Settings.Eval.BishopCenterAimBonus = 2
	Settings.Eval.BishopBlockedMalus = 40
	Settings.Eval.RookOnQueenFileBonus = 6
	Settings.Eval.RookOnOpenFileBonus = 15
	Settings.Eval.RookTrappedMalus = 25
	Settings.Eval.QueenRelativePinMalusMg = 19
	Settings.Eval.QueenRelativePinMalusEg = 12

	Settings.Eval.UseKingEval = true
	Settings.Eval.UseKingSafety = true
	Settings.Eval.KingCastlePawnShieldBonus = 6

	Settings.Eval.KSAttackValue = 44
	Settings.Eval.KSWeakSquares = 38
	Settings.Eval.KSFriendlyPawns = -22
	Settings.Eval.KSNoEnemyQueens = -276
	Settings.Eval.KSSafeQueenCheck = 95
	Settings.Eval.KSSafeRookCheck = 94
	Settings.Eval.KSSafeBishopCheck = 51
	Settings.Eval.KSSafeKnightCheck = 123
	Settings.Eval.KSAdjustment = -18

	Settings.Eval.UseThreats = true
	Settings.Eval.ThreatWeakPawnMalusMg = 11
	Settings.Eval.ThreatWeakPawnMalusEg = 31
	Settings.Eval.ThreatMinorByPawnMalusMg = 51
	Settings.Eval.ThreatMinorByPawnMalusEg = 65
	Settings.Eval.ThreatMinorByMinorMalusMg = 23
	Settings.Eval.ThreatMinorByMinorMalusEg = 39
	Settings.Eval.ThreatMinorByMajorMalusMg = 28
	Settings.Eval.ThreatMinorByMajorMalusEg = 47
	Settings.Eval.ThreatRookByLesserMalusMg = 46
	Settings.Eval.ThreatRookByLesserMalusEg = 25
	Settings.Eval.ThreatMinorByKingMalusMg = 31
	Settings.Eval.ThreatMinorByKingMalusEg = 19
	Settings.Eval.ThreatRookByKingMalusMg = 22
	Settings.Eval.ThreatRookByKingMalusEg = 18
	Settings.Eval.ThreatQueenByOneMalusMg = 48
	Settings.Eval.ThreatQueenByOneMalusEg = 14
	Settings.Eval.ThreatOverloadedMalusMg = 7
	Settings.Eval.ThreatOverloadedMalusEg = 14
	Settings.Eval.ThreatByPawnPushBonusMg = 13
	Settings.Eval.ThreatByPawnPushBonusEg = 27

	Settings.Eval.UseSpace = true
	Settings.Eval.SpaceRestrictPieceMg = 3
	Settings.Eval.SpaceRestrictPieceEg = 1
	Settings.Eval.SpaceRestrictEmptyMg = 4
	Settings.Eval.SpaceRestrictEmptyEg = 2
	Settings.Eval.SpaceCenterControlMg = 4
	Settings.Eval.SpaceCenterControlEg = -3

	Settings.Eval.UseClosedness = true
	Settings.Eval.ClosednessKnightAdjustmentMg = [9]int16{-17, -13, -15, -11, -10, -7, -6, -17, -15}
	Settings.Eval.ClosednessKnightAdjustmentEg = [9]int16{-1, 14, 22, 20, 25, 19, 13, 27, 9}
	Settings.Eval.ClosednessRookAdjustmentMg = [9]int16{47, -2, -2, -11, -20, -14, -16, -26, -42}
	Settings.Eval.ClosednessRookAdjustmentEg = [9]int16{5, 39, 23, 11, 10, -8, -14, -15, -25}

	Settings.Eval.UseComplexity = true
	Settings.Eval.ComplexityTotalPawnsEg = 9
	Settings.Eval.ComplexityPawnFlanksEg = 73
	Settings.Eval.ComplexityPawnEndgameEg = 65
	Settings.Eval.ComplexityAdjustmentEg = -146
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
