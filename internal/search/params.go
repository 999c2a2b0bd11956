/*
 * Corvid - a chess engine core in Go, written for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2026 The Corvid Authors
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

package search

import . "github.com/corvidchess/corvid/internal/types"

// Move ordering scores. The TT move sorts first; captures follow, ordered
// by MVV-LVA; killer moves come after every capture; everything else
// falls back to history.
const (
	scoreTTMove      = int32(30000)
	scoreCaptureBase = int32(10000)
	scoreKiller1     = int32(9000)
	scoreKiller2     = int32(8000)

	promoBonusQueen = int32(5000)
	promoBonusOther = int32(1000)
)

// mvvLvaTier ranks victim types for the tens digit of the MVV-LVA score,
// per piece type index 1..6 (Pawn..King); PtNone's slot is unused.
var mvvLvaTier = [PtLength]int32{0, 15, 25, 25, 35, 45, 0}

// mvvLva scores a capture by victim value (coarse) minus attacker value
// (fine), so among captures of the same victim the cheapest attacker
// sorts first.
func mvvLva(victim, attacker PieceType) int32 {
	return mvvLvaTier[victim]*10 - mvvLvaTier[attacker]
}

func promotionBonus(pt PieceType) int32 {
	if pt == Queen {
		return promoBonusQueen
	}
	if pt != PtNone {
		return promoBonusOther
	}
	return 0
}
