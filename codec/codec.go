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

// Package codec encodes and decodes length-prefixed Msg frames for the
// stream transports (TCP/TLS), and single-datagram encoding for UDP, per
// spec.md §4.1.
package codec

import (
	"encoding/binary"
	"io"

	rierr "github.com/sabouaram/riemann-go-client/errors"
	"github.com/sabouaram/riemann-go-client/pb"
)

// MaxFrameSize bounds a single decoded frame body, guarding against a
// corrupt or hostile length prefix turning into an unbounded allocation.
const MaxFrameSize = 64 << 20 // 64MiB

// Encode serializes msg and prepends its 4-byte big-endian length.
func Encode(msg *pb.Msg) ([]byte, error) {
	body, err := msg.Marshal()
	if err != nil {
		return nil, rierr.Wrap(rierr.CodecFailure, "marshal msg", err)
	}
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out[:4], uint32(len(body)))
	copy(out[4:], body)
	return out, nil
}

// EncodeForUDP serializes msg with no length prefix, for a single datagram.
func EncodeForUDP(msg *pb.Msg) ([]byte, error) {
	body, err := msg.Marshal()
	if err != nil {
		return nil, rierr.Wrap(rierr.CodecFailure, "marshal msg for udp", err)
	}
	return body, nil
}

// Decode reads one length-prefixed frame from r and parses its body.
//
// r is expected to be a buffered reader (the dispatcher uses bufio.Reader
// over the live socket) so that a short read here simply blocks until more
// bytes arrive rather than needing the codec itself to remember a partial
// header across calls - see DESIGN.md for why this does not keep explicit
// partial-frame state.
func Decode(r io.Reader) (*pb.Msg, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, rierr.Wrap(rierr.IOFailure, "read frame length", err)
	}

	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > MaxFrameSize {
		return nil, rierr.New(rierr.CodecFailure, "frame exceeds maximum size")
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, rierr.Wrap(rierr.IOFailure, "read frame body", err)
	}

	msg := &pb.Msg{}
	if err := msg.Unmarshal(body); err != nil {
		return nil, rierr.Wrap(rierr.CodecFailure, "unmarshal msg", err)
	}
	return msg, nil
}
