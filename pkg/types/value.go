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

import (
	"fmt"

	"github.com/frankkopp/FrankyGo/internal/util"
)

// Value is a centipawn evaluation score from the perspective of the side
// to move - positive is good for the mover, negative is bad.
type Value int16

//noinspection GoUnusedConst
const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueOne   Value = 1
	ValueInf   Value = 15_000
	ValueNA    Value = -ValueInf - 1
	ValueMax   Value = 10_000
	ValueMin   Value = -ValueMax
	// ValueCheckMate is the score of the side delivering mate right now.
	ValueCheckMate Value = ValueMax
	// ValueCheckMateThreshold is the lower bound beyond which a Value encodes
	// a mate-in-N rather than a material/positional score.
	ValueCheckMateThreshold Value = ValueCheckMate - Value(MaxDepth) - 1
)

// IsValid checks if the Value is within the legal evaluation range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue returns true if the Value encodes a checkmate score
// (positive or negative, for either side).
func (v Value) IsCheckMateValue() bool {
	return Value(util.Abs(int(v))) >= ValueCheckMateThreshold
}

// String returns a human readable representation of the Value - either a
// mate distance ("mate 3"), a centipawn score ("cp 123") or "N/A".
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsCheckMateValue():
		if v > 0 {
			return fmt.Sprintf("mate %d", (ValueCheckMate-v+1)/2)
		}
		return fmt.Sprintf("mate -%d", (ValueCheckMate+v+1)/2)
	default:
		return fmt.Sprintf("cp %d", v)
	}
}
