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

// MoveType classifies the special handling a move needs when applied to
// a position - most moves are Normal, the other three need board updates
// beyond moving a single piece from one square to another.
type MoveType uint8

//noinspection GoUnusedConst
const (
	Normal    MoveType = iota // 0
	Promotion                 // 1
	EnPassant                 // 2
	Castling                  // 3
)

// IsValid checks if the MoveType is one of the four defined types.
func (mt MoveType) IsValid() bool {
	return mt <= Castling
}

// String returns a human readable representation of the MoveType.
func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return "Normal"
	case Promotion:
		return "Promotion"
	case EnPassant:
		return "EnPassant"
	case Castling:
		return "Castling"
	default:
		return "Invalid"
	}
}
