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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestKillersStoreShiftsPreviousIntoSecondSlot(t *testing.T) {
	k := NewKillers()
	m1 := CreateMove(SqA1, ParseSquare("a2"), 0, PtNone)
	m2 := CreateMove(SqB1, ParseSquare("b2"), 0, PtNone)

	k.Store(3, m1)
	assert.Equal(t, m1, k.First(3))
	assert.Equal(t, MoveNone, k.Second(3))

	k.Store(3, m2)
	assert.Equal(t, m2, k.First(3))
	assert.Equal(t, m1, k.Second(3))
}

func TestKillersStoreIgnoresDuplicateOfFirst(t *testing.T) {
	k := NewKillers()
	m1 := CreateMove(SqA1, ParseSquare("a2"), 0, PtNone)
	k.Store(5, m1)
	k.Store(5, m1)
	assert.Equal(t, m1, k.First(5))
	assert.Equal(t, MoveNone, k.Second(5))
}

func TestKillersClearResetsAllPlies(t *testing.T) {
	k := NewKillers()
	k.Store(0, CreateMove(SqA1, ParseSquare("a2"), 0, PtNone))
	k.Clear()
	assert.Equal(t, MoveNone, k.First(0))
}

func TestHistoryUpdateIncreasesScoreMonotonicallyTowardsCap(t *testing.T) {
	h := NewTable()
	e4 := ParseSquare("e4")
	prev := int32(0)
	for i := 0; i < 50; i++ {
		h.Update(White, e4, 6)
		cur := h.Score(White, e4)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.LessOrEqual(t, prev, int32(historyMax))
}

func TestHistoryClearZeroesScores(t *testing.T) {
	h := NewTable()
	d5 := ParseSquare("d5")
	h.Update(Black, d5, 4)
	h.Clear()
	assert.Equal(t, int32(0), h.Score(Black, d5))
}
