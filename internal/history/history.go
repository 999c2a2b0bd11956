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

// Package history provides the two move-ordering tables the search
// consults for quiet moves that have no transposition-table hit: a
// per-ply killer table (moves that recently caused a beta cutoff at that
// ply) and a history heuristic table (a running score per side/to-square
// that biases move ordering towards moves that have cut off before,
// wherever in the tree they occurred).
package history

import . "github.com/corvidchess/corvid/internal/types"

const historyMax = 4000

// Killers holds, for every ply, the two most recent quiet moves that
// caused a beta cutoff there. Slot 0 is the most recent.
type Killers struct {
	moves [MaxPly][2]Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers {
	return &Killers{}
}

// Store records m as the newest killer at ply, shifting the previous
// slot-0 killer down to slot 1. A move already in slot 0 is not
// duplicated.
func (k *Killers) Store(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// First returns the primary killer at ply, or MoveNone if none recorded.
func (k *Killers) First(ply int) Move {
	if ply < 0 || ply >= MaxPly {
		return MoveNone
	}
	return k.moves[ply][0]
}

// Second returns the secondary killer at ply, or MoveNone if none recorded.
func (k *Killers) Second(ply int) Move {
	if ply < 0 || ply >= MaxPly {
		return MoveNone
	}
	return k.moves[ply][1]
}

// Clear empties every ply's killer slots. The engine calls it from
// NewGame, so killers carry over between searches within one game.
func (k *Killers) Clear() {
	*k = Killers{}
}

// Table is the history heuristic: a running score per (side, to-square)
// updated whenever a quiet move causes a beta cutoff, and decayed
// relative to its own magnitude so that it converges instead of growing
// without bound.
type Table struct {
	score [ColorLength][128]int32
}

// NewTable returns a zeroed history table.
func NewTable() *Table {
	return &Table{}
}

// Score returns the current history score for a quiet move by side to
// the given destination square.
func (h *Table) Score(side Color, to Square) int32 {
	return h.score[side][to]
}

// Update rewards a quiet move that caused a beta cutoff at the given
// search depth, following the teacher's gravity formula: the increment
// shrinks as the existing score approaches its cap, so repeated cutoffs
// saturate instead of overflowing.
func (h *Table) Update(side Color, to Square, depth int8) {
	d2 := int32(depth) * int32(depth)
	cur := h.score[side][to]
	cur += d2 - cur*d2/16384
	if cur > historyMax {
		cur = historyMax
	}
	if cur < -historyMax {
		cur = -historyMax
	}
	h.score[side][to] = cur
}

// Clear zeroes every entry. The engine calls it from NewGame.
func (h *Table) Clear() {
	*h = Table{}
}
