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

// maxGamePly bounds the repetition stack; pushes past it are silently
// dropped per the documented degradation (a repetition that far back in
// an unusually long game may be missed, the game itself is unaffected).
const maxGamePly = 1024

// RepetitionHistory is a caller-maintained stack of position hashes used
// to detect threefold repetition during search. Pop is the exact inverse
// of the matching Push, mirroring make/unmake's symmetry.
type RepetitionHistory struct {
	hashes       [maxGamePly]uint32
	count        int
	irreversible int
}

// NewRepetitionHistory returns an empty stack.
func NewRepetitionHistory() *RepetitionHistory {
	return &RepetitionHistory{}
}

// Push records hash as the most recent position. Pushes beyond capacity
// are dropped rather than panicking.
func (r *RepetitionHistory) Push(hash uint32) {
	if r.count >= maxGamePly {
		return
	}
	r.hashes[r.count] = hash
	r.count++
}

// Pop removes the most recently pushed hash. Calling Pop without a
// matching Push (e.g. because the stack was full) is a no-op, matching
// the silent-drop degradation on the push side.
func (r *RepetitionHistory) Pop() {
	if r.count > 0 && r.count > r.irreversible {
		r.count--
	}
}

// Clear empties the stack and resets the irreversible watermark.
func (r *RepetitionHistory) Clear() {
	r.count = 0
	r.irreversible = 0
}

// SetIrreversible marks the current top of stack as a position no future
// repetition can reach back past (e.g. after a pawn move or a capture).
func (r *RepetitionHistory) SetIrreversible() {
	r.irreversible = r.count
}

// IsRepetition reports whether hash (just pushed as the current position)
// already occurred at an earlier same-side-to-move ply at or after the
// irreversible watermark. At least three occurrences on the stack,
// counting the current one, are required before this reports true.
func (r *RepetitionHistory) IsRepetition(hash uint32) bool {
	// hash is assumed already pushed as hashes[count-1]; same side to move
	// recurs two plies back from there, so start the scan at count-3.
	seen := 0
	for i := r.count - 3; i >= r.irreversible; i -= 2 {
		if r.hashes[i] == hash {
			seen++
			if seen >= 2 {
				return true
			}
		}
	}
	return false
}
