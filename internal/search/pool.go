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

// maxMovesPerNode generously bounds how many pseudo-legal moves any single
// position can generate; used to size the process-wide move pool.
const maxMovesPerNode = 256

// movePool is a single backing array of scored moves shared across an
// entire search tree, claimed in stack discipline: each node reserves a
// window on entry and releases it on exit (even through a cutoff), so no
// per-node allocation ever happens during search.
type movePool struct {
	buf []ScoredMove
	top int
}

func newMovePool() *movePool {
	return &movePool{buf: make([]ScoredMove, MaxPly*maxMovesPerNode)}
}

// mark returns the current pool pointer; restore it on node exit.
func (p *movePool) mark() int { return p.top }

// restore resets the pool pointer, releasing everything claimed since mark.
func (p *movePool) restore(mark int) { p.top = mark }

// claim reserves n slots and returns the window, or ok=false if the pool
// is exhausted — the caller degrades gracefully by falling back to a
// static evaluation for that node instead of panicking or growing the
// slice mid-search.
func (p *movePool) claim(n int) (window []ScoredMove, ok bool) {
	if p.top+n > len(p.buf) {
		return nil, false
	}
	window = p.buf[p.top : p.top+n]
	p.top += n
	return window, true
}
