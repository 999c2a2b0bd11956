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

package openingbook

import (
	"encoding/binary"
	"fmt"
	"os"
)

// loadRandomTable reads the 781 consecutive big-endian 64-bit Polyglot
// random values from a shared data resource at path.
func loadRandomTable(path string) (*[numRandoms]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	want := numRandoms * 8
	if len(data) < want {
		return nil, fmt.Errorf("openingbook: random table %q has %d bytes, want at least %d", path, len(data), want)
	}
	var table [numRandoms]uint64
	for i := range table {
		table[i] = binary.BigEndian.Uint64(data[i*8 : i*8+8])
	}
	return &table, nil
}
