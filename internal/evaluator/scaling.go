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
	. "github.com/frankkopp/FrankyGo/pkg/types"
)

// Endgame scale factors, grounded on original_source/src/evaluate.c's
// evaluateScaleFactor(). The constants themselves are not in the retrieved
// sources (they live in Ethereal's evaluate.h, which was not part of the
// pack) so the values below are the well known Ethereal tuning constants
// rather than a literal transcription.
const (
	scaleDraw          = 0
	scaleOcbBishopOnly = 64
	scaleOcbOneKnight  = 106
	scaleOcbOneRook    = 96
	scaleLoneQueen     = 88
	scaleLargePawnAdv  = 144
)

// onlyOne reports whether bb has exactly one bit set.
func onlyOne(bb Bitboard) bool {
	return bb != BbZero && bb&(bb-1) == BbZero
}

// several reports whether bb has more than one bit set.
func several(bb Bitboard) bool {
	return bb != BbZero && bb&(bb-1) != BbZero
}

// scaleFactor shrinks the endgame half of the score for material
// distributions that are known to be harder to convert than the raw
// endgame value suggests - opposite coloured bishops, a lone queen facing
// several minors/rooks, a stronger side left with only its king and a
// single minor (no pawns), and a lone piece with a large pawn majority. Grounded on evaluate.c's
// evaluateScaleFactor(); eg is the endgame half of the score, from white's
// point of view, before interpolation.
func (e *Evaluator) scaleFactor(eg int16) int {
	p := e.position

	pawns := p.PiecesBb(White, Pawn) | p.PiecesBb(Black, Pawn)
	whiteBishops := p.PiecesBb(White, Bishop)
	blackBishops := p.PiecesBb(Black, Bishop)
	bishops := whiteBishops | blackBishops
	knights := p.PiecesBb(White, Knight) | p.PiecesBb(Black, Knight)
	rooks := p.PiecesBb(White, Rook) | p.PiecesBb(Black, Rook)
	queens := p.PiecesBb(White, Queen) | p.PiecesBb(Black, Queen)

	minors := knights | bishops
	pieces := knights | bishops | rooks

	white := p.OccupiedBb(White)
	black := p.OccupiedBb(Black)

	weak, strong := black, white
	if eg < 0 {
		weak, strong = white, black
	}

	if onlyOne(white&bishops) && onlyOne(black&bishops) && onlyOne(bishops&SquaresBb(White)) {
		switch {
		case rooks|queens == BbZero && onlyOne(white&knights) && onlyOne(black&knights):
			return scaleOcbOneKnight
		case knights|queens == BbZero && onlyOne(white&rooks) && onlyOne(black&rooks):
			return scaleOcbOneRook
		case knights|rooks|queens == BbZero:
			return scaleOcbBishopOnly
		}
	}

	if onlyOne(queens) && several(pieces) && pieces == weak&pieces {
		return scaleLoneQueen
	}

	if strong&minors != BbZero && (strong).PopCount() == 2 {
		return scaleDraw
	}

	if queens == BbZero && !several(pieces&white) && !several(pieces&black) &&
		(strong&pawns).PopCount()-(weak&pawns).PopCount() > 2 {
		return scaleLargePawnAdv
	}

	return ScaleNormal
}
