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

import "fmt"

// Key is used for zobrist keys in chess positions and pawn structures.
// Zobrist keys need all 64 bits for distribution.
type Key uint64

// Score carries the midgame and endgame half of an evaluation term so the
// evaluator only has to interpolate once per call to Evaluate, at the very
// end, instead of re-deriving a game-phase-weighted value term by term.
type Score struct {
	MidGameValue int16
	EndGameValue int16
}

// Add adds another Score's halves into this one in place.
func (s *Score) Add(o *Score) {
	s.MidGameValue += o.MidGameValue
	s.EndGameValue += o.EndGameValue
}

// Sub subtracts another Score's halves from this one in place.
func (s *Score) Sub(o *Score) {
	s.MidGameValue -= o.MidGameValue
	s.EndGameValue -= o.EndGameValue
}

// ScaleNormal is the neutral endgame scale factor (no scaling applied).
const ScaleNormal = 128

// ValueFromScore interpolates between the midgame and endgame halves using
// gamePhaseFactor (1.0 at the start of the game, 0.0 with no officers left)
// and scaleFactor, which shrinks the endgame half towards a draw for
// material distributions (opposite coloured bishops, a lone queen against
// several pieces, a lone minor with pawns, ...) that are known to be much
// harder to convert than the raw endgame score suggests. Pass ScaleNormal
// to leave the endgame half untouched.
func (s *Score) ValueFromScore(gamePhaseFactor float64, scaleFactor int) Value {
	scaledEg := float64(s.EndGameValue) * float64(scaleFactor) / float64(ScaleNormal)
	return Value(float64(s.MidGameValue)*gamePhaseFactor + scaledEg*(1-gamePhaseFactor))
}

// String renders both halves for debugging/logging.
func (s Score) String() string {
	return fmt.Sprintf("(mg %d, eg %d)", s.MidGameValue, s.EndGameValue)
}
