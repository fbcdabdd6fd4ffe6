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

// Package transport dials the three wire carriers a Riemann server speaks -
// plain TCP, TLS over TCP, and UDP - behind one small interface so the
// dispatcher never needs to know which one it is holding.
package transport

import (
	"bufio"
	"io"
	"net"

	rierr "github.com/sabouaram/riemann-go-client/errors"
)

// Kind identifies which carrier a Transport was dialed with.
type Kind uint8

const (
	KindTCP Kind = iota
	KindTLS
	KindUDP
)

func (k Kind) String() string {
	switch k {
	case KindTCP:
		return "tcp"
	case KindTLS:
		return "tls"
	case KindUDP:
		return "udp"
	default:
		return "unknown"
	}
}

// Transport is a dialed connection to a Riemann server. Frame writes on a
// stream transport are length-prefixed by the caller (see package codec);
// UDP transports carry one bare datagram per Write and never reply.
type Transport interface {
	// Writer exposes the raw connection for framed writes.
	io.Writer
	// Reader exposes a buffered reader over the connection so codec.Decode
	// can block for more bytes instead of needing its own partial-frame
	// state (see codec.Decode's doc comment).
	Reader() *bufio.Reader
	Close() error
	Kind() Kind
}

type streamTransport struct {
	conn net.Conn
	r    *bufio.Reader
	kind Kind
}

func newStreamTransport(conn net.Conn, kind Kind) *streamTransport {
	return &streamTransport{conn: conn, r: bufio.NewReader(conn), kind: kind}
}

func (s *streamTransport) Write(p []byte) (int, error) {
	n, err := s.conn.Write(p)
	if err != nil {
		return n, rierr.Wrap(rierr.IOFailure, "write frame", err)
	}
	return n, nil
}

func (s *streamTransport) Reader() *bufio.Reader { return s.r }
func (s *streamTransport) Close() error          { return s.conn.Close() }
func (s *streamTransport) Kind() Kind            { return s.kind }

type udpTransport struct {
	conn net.Conn
	r    *bufio.Reader
}

func (u *udpTransport) Write(p []byte) (int, error) {
	n, err := u.conn.Write(p)
	if err != nil {
		return n, rierr.Wrap(rierr.IOFailure, "send datagram", err)
	}
	return n, nil
}

// Reader exists to satisfy Transport; UDP never reads a reply, so a caller
// that invokes it has misused the transport (queries over UDP are rejected
// as Unsupported one layer up, in Client.SendQuery).
func (u *udpTransport) Reader() *bufio.Reader { return u.r }
func (u *udpTransport) Close() error          { return u.conn.Close() }
func (u *udpTransport) Kind() Kind            { return KindUDP }
