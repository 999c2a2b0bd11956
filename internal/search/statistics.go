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

import "github.com/corvidchess/corvid/internal/util"

// Statistics accumulates counters describing one SearchGo call's shape,
// purely for diagnostics: nothing here feeds back into search decisions.
type Statistics struct {
	Nodes           uint64
	QNodes          uint64
	TTHits          uint64
	TTMisses        uint64
	NullMoveCutoffs uint64
	LmrResearches   uint64
	BetaCutoffsAt1  uint64
	BetaCutoffsLate uint64
}

func (s *Statistics) reset() { *s = Statistics{} }

// recordBetaCutoff tracks whether a cutoff happened on the first move
// tried at a node (good ordering) or later (room for improvement).
func (s *Statistics) recordBetaCutoff(moveIndex int) {
	if moveIndex == 0 {
		s.BetaCutoffsAt1++
	} else {
		s.BetaCutoffsLate++
	}
}

// String reports the accumulated counters with thousands separators, the
// way the teacher's search statistics are printed for "info string" output.
func (s *Statistics) String() string {
	return util.Printer.Sprintf(
		"nodes=%d qnodes=%d ttHits=%d ttMisses=%d nullCutoffs=%d lmrResearches=%d betaAt1=%d betaLate=%d",
		s.Nodes, s.QNodes, s.TTHits, s.TTMisses, s.NullMoveCutoffs, s.LmrResearches, s.BetaCutoffsAt1, s.BetaCutoffsLate)
}
