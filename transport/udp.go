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

package transport

import (
	"bufio"
	"net"

	rierr "github.com/sabouaram/riemann-go-client/errors"
)

// DialUDP binds an ephemeral local port and connects it to addr so Write
// targets that one peer. Riemann never replies over UDP: the client's UDP
// conn treats a send as fire-and-forget and synthesizes its own ok reply.
func DialUDP(addr string) (Transport, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, rierr.Wrap(rierr.IOFailure, "resolve udp "+addr, err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, rierr.Wrap(rierr.IOFailure, "dial udp "+addr, err)
	}
	return &udpTransport{conn: conn, r: bufio.NewReader(nopReader{})}, nil
}

// nopReader always reports net.ErrClosed; UDP transports have no reply
// stream to read.
type nopReader struct{}

func (nopReader) Read(p []byte) (int, error) { return 0, net.ErrClosed }
