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

// TimeFunc returns the current time in milliseconds on whatever clock the
// caller wants the search to use, so tests can inject a fake clock instead
// of depending on wall time.
type TimeFunc func() uint32

// Limits configures a single SearchGo invocation. The zero value means
// "no limit" for every numeric field; if MaxDepth, MaxTimeMs and MaxNodes
// are all zero the search runs to depth 1 only.
type Limits struct {
	MaxDepth  uint8
	MaxTimeMs uint32
	MaxNodes  uint32
	TimeFn    TimeFunc
	EvalNoise int32
}

// effectiveMaxDepth returns the depth ceiling iterative deepening should
// stop at, applying the "all limits zero means depth 1" and "zero depth
// means MaxPly-1" rules from the search contract.
func (l Limits) effectiveMaxDepth() int {
	if l.MaxDepth == 0 && l.MaxTimeMs == 0 && l.MaxNodes == 0 {
		return 1
	}
	if l.MaxDepth == 0 {
		return MaxPly - 1
	}
	return int(l.MaxDepth)
}

func (l Limits) hasTimeLimit() bool {
	return l.MaxTimeMs > 0 && l.TimeFn != nil
}

func (l Limits) hasNodeLimit() bool {
	return l.MaxNodes > 0
}

// Result is what SearchGo reports once it commits to a move: the best
// completed iteration's move and score, the depth that iteration reached,
// and the total node count across the whole call.
type Result struct {
	BestMove Move
	Score    Value
	Depth    int
	Nodes    uint64
}
