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

package types

// Evaluation specific masks, keyed by square and/or color, built at package
// init time by square.go's init, right after the magic bitboard tables in
// bitboard.go (this file's own init runs earlier and is overwritten). Most
// of these are thin combinations of the primitives already computed there
// (PassedPawnMask, NeighbourFilesMask, Ray) rather than independent tables.

var outpostSquareMask [ColorLength][SqLength]Bitboard
var pawnConnectedMask [ColorLength][SqLength]Bitboard
var forwardFileMask [ColorLength][SqLength]Bitboard
var forwardRanksMask [ColorLength][8]Bitboard
var kingAreaMask [ColorLength][SqLength]Bitboard
var longDiagonalMask Bitboard
var centerBigMask Bitboard
var flankMask [2]Bitboard // 0 = queenside (files A-D), 1 = kingside (files E-H)

// OutpostSquareMasks returns the squares from which an enemy pawn could ever
// attack sq - i.e. the adjacent-file, forward portion of sq's passed pawn
// mask. A piece on sq with this mask empty of enemy pawns sits on an outpost.
func OutpostSquareMasks(c Color, sq Square) Bitboard {
	return outpostSquareMask[c][sq]
}

// PawnConnectedMasks returns the squares on which a friendly pawn would
// directly support a pawn standing on sq (the same-rank squares on the
// neighbour files plus the two diagonal squares behind, from c's point of view).
func PawnConnectedMasks(c Color, sq Square) Bitboard {
	return pawnConnectedMask[c][sq]
}

// AdjacentFilesMasks returns the two files neighbouring f, none of f itself.
// NeighbourFilesMask is keyed by square but only depends on the square's
// file, so any square on f gives the same mask.
func AdjacentFilesMasks(f File) Bitboard {
	return SquareOf(f, Rank1).NeighbourFilesMask()
}

// ForwardRanksMasks returns all squares on ranks strictly ahead of r from
// c's point of view.
func ForwardRanksMasks(c Color, r Rank) Bitboard {
	return forwardRanksMask[c][r]
}

// ForwardFileMasks returns the squares ahead of sq on its own file, from c's
// point of view - the classic "no enemy pawn can ever block/capture on this
// file ahead of me" ray used for passed-pawn and rook-on-open-file checks.
func ForwardFileMasks(c Color, sq Square) Bitboard {
	return forwardFileMask[c][sq]
}

// KingAreaMasks returns the zone of squares around a king on sq used to
// count enemy attacker weight for king safety.
func KingAreaMasks(c Color, sq Square) Bitboard {
	return kingAreaMask[c][sq]
}

// BitsBetweenMasks returns the squares strictly between a and b (exclusive
// of both endpoints), or BbZero if they do not share a line.
func BitsBetweenMasks(a Square, b Square) Bitboard {
	return Intermediate(a, b)
}

// LongDiagonalMasks returns the two long diagonals (a1-h8 and a8-h1), used
// to detect fianchetto bishops for closedness/complexity terms.
func LongDiagonalMasks() Bitboard {
	return longDiagonalMask
}

// CenterBigMasks returns the 4x4 central square block used as the arena for
// the space evaluation term.
func CenterBigMasks() Bitboard {
	return centerBigMask
}

// FlankMasks returns the queenside (files A-D) or kingside (files E-H) half
// of the board, used by the threat and space terms to weight flank activity.
func FlankMasks(kingSide bool) Bitboard {
	if kingSide {
		return flankMask[1]
	}
	return flankMask[0]
}

func init() {
	initEvalMasks()
}

func initEvalMasks() {
	longDiagonalMask = DiagUpA1 | DiagDownH1
	centerBigMask = (FileC_Bb | FileD_Bb | FileE_Bb | FileF_Bb) & (Rank3_Bb | Rank4_Bb | Rank5_Bb | Rank6_Bb)
	flankMask[0] = FileA_Bb | FileB_Bb | FileC_Bb | FileD_Bb
	flankMask[1] = FileE_Bb | FileF_Bb | FileG_Bb | FileH_Bb

	for c := White; c <= Black; c++ {
		for r := Rank1; r <= Rank8; r++ {
			var bb Bitboard
			if c == White {
				for rr := r + 1; rr <= Rank8; rr++ {
					bb |= rr.Bb()
				}
			} else {
				for rr := Rank(0); rr < r; rr++ {
					bb |= rr.Bb()
				}
			}
			forwardRanksMask[c][r] = bb
		}

		for sq := SqA1; sq < SqNone; sq++ {
			outpostSquareMask[c][sq] = sq.PassedPawnMask(c) & sq.NeighbourFilesMask()

			if c == White {
				forwardFileMask[c][sq] = sq.Ray(N)
			} else {
				forwardFileMask[c][sq] = sq.Ray(S)
			}

			var conn Bitboard
			if c == White {
				if w := sq.To(Southwest); w.IsValid() {
					conn.PushSquare(w)
				}
				if e := sq.To(Southeast); e.IsValid() {
					conn.PushSquare(e)
				}
			} else {
				if w := sq.To(Northwest); w.IsValid() {
					conn.PushSquare(w)
				}
				if e := sq.To(Northeast); e.IsValid() {
					conn.PushSquare(e)
				}
			}
			if w := sq.To(West); w.IsValid() {
				conn.PushSquare(w)
			}
			if e := sq.To(East); e.IsValid() {
				conn.PushSquare(e)
			}
			pawnConnectedMask[c][sq] = conn

			area := GetAttacksBb(King, sq, BbZero) | sq.Bb()
			area |= shiftRank(area, c)
			kingAreaMask[c][sq] = area
		}
	}
}

// forwardOne returns the rank one step ahead of r from c's point of view.
func (r Rank) forwardOne(c Color) Rank {
	if c == White {
		if r >= Rank8 {
			return Rank8
		}
		return r + 1
	}
	if r <= Rank1 {
		return Rank1
	}
	return r - 1
}

// shiftRank shifts every square in bb one rank further from c's back rank,
// used to extend the king safety zone by one extra rank forward.
func shiftRank(bb Bitboard, c Color) Bitboard {
	if c == White {
		return bb << 8
	}
	return bb >> 8
}
