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

package transpositiontable

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// Entry is one transposition table slot. It stores the 32-bit Zobrist
// hash used to pick the slot plus the 16-bit lock used to reject near
// collisions cheaply, a packed move (from/to/promotion only), a search
// score, a search depth and a bound kind. The fields take twelve bytes;
// table sizing budgets EntrySize bytes per slot.
type Entry struct {
	hash  uint32
	lock  uint16
	move  uint16
	score int16
	vmeta uint16
	// vmeta bit layout, low to high: depth (8 bits), bound (2 bits),
	// generation (6 bits). Generation 0 means "never written".
}

const (
	// EntrySize is the number of bytes budgeted per Entry when sizing the table.
	EntrySize = 16

	depthMask  = uint16(0x00FF)
	boundMask  = uint16(0x0300)
	boundShift = 8
	genMask    = uint16(0xFC00)
	genShift   = 10
	maxGen     = uint16(genMask >> genShift)
)

func packVmeta(depth int8, bound Bound, gen uint16) uint16 {
	return uint16(uint8(depth)) | uint16(bound)<<boundShift | (gen<<genShift)&genMask
}

// Hash returns the slot's stored 32-bit Zobrist hash.
func (e *Entry) Hash() uint32 { return e.hash }

// Lock returns the slot's stored 16-bit Zobrist lock.
func (e *Entry) Lock() uint16 { return e.lock }

// Move returns the slot's packed best move; compare with Move.Packed().
func (e *Entry) Move() uint16 { return e.move }

// Score returns the slot's stored score, still mate-normalized by ply.
func (e *Entry) Score() Value { return Value(e.score) }

// Depth returns the search depth the slot was stored at.
func (e *Entry) Depth() int8 { return int8(e.vmeta & depthMask) }

// BoundKind returns whether Score is exact, an upper bound or a lower bound.
func (e *Entry) BoundKind() Bound { return Bound((e.vmeta & boundMask) >> boundShift) }

func (e *Entry) generation() uint16 { return (e.vmeta & genMask) >> genShift }

func (e *Entry) occupied() bool { return e.vmeta != 0 || e.hash != 0 || e.lock != 0 }
