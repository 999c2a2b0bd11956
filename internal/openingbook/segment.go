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
	"path/filepath"
	"sort"
)

// entrySize is the on-disk width of one Polyglot book entry: 8-byte key,
// 2-byte move, 2-byte weight, 4-byte learn (ignored).
const entrySize = 16

// entry is one decoded Polyglot book record.
type entry struct {
	key    uint64
	move   uint16
	weight uint16
}

// segment is one loaded "<tier><NN>.bin" file, parsed into key-sorted
// entries exactly as they appear on disk.
type segment struct {
	path    string
	entries []entry
}

// loadSegment reads a segment file: a 4-byte little-endian entry count
// followed by that many big-endian 16-byte entries.
func loadSegment(path string) (*segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("openingbook: segment %q shorter than its header", path)
	}
	count := binary.LittleEndian.Uint32(data[0:4])
	want := 4 + int(count)*entrySize
	if len(data) < want {
		return nil, fmt.Errorf("openingbook: segment %q declares %d entries but is truncated", path, count)
	}

	entries := make([]entry, count)
	off := 4
	for i := range entries {
		entries[i] = entry{
			key:    binary.BigEndian.Uint64(data[off : off+8]),
			move:   binary.BigEndian.Uint16(data[off+8 : off+10]),
			weight: binary.BigEndian.Uint16(data[off+10 : off+12]),
		}
		off += entrySize
	}
	return &segment{path: path, entries: entries}, nil
}

// firstAtOrAfter returns the index of the first entry with key >= target,
// or len(s.entries) if none.
func (s *segment) firstAtOrAfter(target uint64) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].key >= target
	})
}

// loadTier loads segments named "<tier><NN>.bin" for NN = 01.., in order,
// stopping at the first missing number or at maxSegments, whichever comes
// first. A missing "01" segment is not an error: it means this tier is
// simply absent from bookDir.
func loadTier(bookDir, tier string, maxSegments int) ([]*segment, error) {
	var segments []*segment
	for n := 1; n <= maxSegments; n++ {
		name := fmt.Sprintf("%s%02d.bin", tier, n)
		path := filepath.Join(bookDir, name)
		if _, err := os.Stat(path); err != nil {
			break
		}
		seg, err := loadSegment(path)
		if err != nil {
			return segments, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
