/*
 * MIT License
 *
 * Copyright (c) 2026 Nicolas JUHEL
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
 *
 *
 */

package pb

import (
	"encoding/binary"
	"errors"
	"math"
)

const (
	wireVarint  = 0
	wireFixed64 = 1
	wireBytes   = 2
	wireFixed32 = 5
)

// ErrTruncated is returned when a length-delimited or varint field runs past
// the end of the buffer.
var ErrTruncated = errors.New("pb: truncated message")

func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func appendTag(buf []byte, fieldNum int, wireType uint64) []byte {
	return appendVarint(buf, uint64(fieldNum)<<3|wireType)
}

func appendString(buf []byte, fieldNum int, s string) []byte {
	buf = appendTag(buf, fieldNum, wireBytes)
	buf = appendVarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func appendBytesField(buf []byte, fieldNum int, b []byte) []byte {
	buf = appendTag(buf, fieldNum, wireBytes)
	buf = appendVarint(buf, uint64(len(b)))
	return append(buf, b...)
}

func appendBool(buf []byte, fieldNum int, v bool) []byte {
	buf = appendTag(buf, fieldNum, wireVarint)
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

func appendInt64(buf []byte, fieldNum int, v int64) []byte {
	buf = appendTag(buf, fieldNum, wireVarint)
	return appendVarint(buf, uint64(v))
}

func zigzag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

func unzigzag64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

func appendSint64(buf []byte, fieldNum int, v int64) []byte {
	buf = appendTag(buf, fieldNum, wireVarint)
	return appendVarint(buf, zigzag64(v))
}

func appendFloat32(buf []byte, fieldNum int, v float32) []byte {
	buf = appendTag(buf, fieldNum, wireFixed32)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	return append(buf, tmp[:]...)
}

func appendFloat64(buf []byte, fieldNum int, v float64) []byte {
	buf = appendTag(buf, fieldNum, wireFixed64)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	return append(buf, tmp[:]...)
}

// readVarint reads a base-128 varint from data and returns its value and the
// number of bytes consumed.
func readVarint(data []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i := 0; i < len(data); i++ {
		b := data[i]
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, i + 1, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, 0, errors.New("pb: varint overflow")
		}
	}
	return 0, 0, ErrTruncated
}

// fieldHeader decodes a tag from the front of data.
func fieldHeader(data []byte) (fieldNum int, wireType uint64, n int, err error) {
	tag, n, err := readVarint(data)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(tag >> 3), tag & 0x7, n, nil
}

// skipField advances past a field's value given its wire type, returning the
// number of bytes consumed (not including the tag, already consumed by the
// caller).
func skipField(data []byte, wireType uint64) (int, error) {
	switch wireType {
	case wireVarint:
		_, n, err := readVarint(data)
		return n, err
	case wireFixed64:
		if len(data) < 8 {
			return 0, ErrTruncated
		}
		return 8, nil
	case wireFixed32:
		if len(data) < 4 {
			return 0, ErrTruncated
		}
		return 4, nil
	case wireBytes:
		l, n, err := readVarint(data)
		if err != nil {
			return 0, err
		}
		if uint64(len(data)-n) < l {
			return 0, ErrTruncated
		}
		return n + int(l), nil
	default:
		return 0, errors.New("pb: unknown wire type")
	}
}

func readLengthDelimited(data []byte) ([]byte, int, error) {
	l, n, err := readVarint(data)
	if err != nil {
		return nil, 0, err
	}
	if uint64(len(data)-n) < l {
		return nil, 0, ErrTruncated
	}
	return data[n : n+int(l)], n + int(l), nil
}

func readFixed32(data []byte) (uint32, error) {
	if len(data) < 4 {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint32(data), nil
}

func readFixed64(data []byte) (uint64, error) {
	if len(data) < 8 {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint64(data), nil
}

func float32FromBits(v uint32) float32 {
	return math.Float32frombits(v)
}

func float64FromBits(v uint64) float64 {
	return math.Float64frombits(v)
}
