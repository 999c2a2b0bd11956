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

package movegen

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Perft counts leaf nodes of the full game tree to a fixed depth, the
// standard way to cross-check a move generator's correctness against
// known node counts for well studied positions.
type Perft struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Run walks the tree rooted at b to the given depth and returns the
// populated counters.
func Run(b *position.Board, depth int) Perft {
	var p Perft
	p.walk(b, depth)
	return p
}

func (p *Perft) walk(b *position.Board, depth int) {
	if depth == 0 {
		p.Nodes++
		return
	}

	var moves [256]Move
	n := Generate(b, All, moves[:])
	us := b.Side()

	for i := 0; i < n; i++ {
		m := moves[i]
		var undo position.Undo
		b.Make(m, &undo)
		if b.InCheck(us) {
			b.Unmake(m, &undo)
			continue
		}

		if depth == 1 {
			p.Nodes++
			if m.IsCapture() {
				p.Captures++
			}
			if m.IsEnPassant() {
				p.EnPassants++
			}
			if m.IsCastle() {
				p.Castles++
			}
			if m.IsPromotion() {
				p.Promotions++
			}
			if b.InCheck(b.Side()) {
				p.Checks++
			}
		} else {
			p.walk(b, depth-1)
		}

		b.Unmake(m, &undo)
	}
}
