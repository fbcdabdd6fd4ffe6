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

package riemann

import (
	"context"
	"sync"

	"github.com/sabouaram/riemann-go-client/codec"
	"github.com/sabouaram/riemann-go-client/pb"
	"github.com/sabouaram/riemann-go-client/transport"
)

// udpConn fires events at the server and never waits for a reply - Riemann
// does not send one over UDP. A send-side I/O failure still marks the
// connection dead, the same as any other socket error would.
type udpConn struct {
	tr transport.Transport

	mu      sync.Mutex
	isDead  bool
	deadErr error
}

func newUDPConn(tr transport.Transport) *udpConn {
	return &udpConn{tr: tr}
}

func (c *udpConn) sendMsg(_ context.Context, msg *pb.Msg) (*pb.Msg, error) {
	body, err := codec.EncodeForUDP(msg)
	if err != nil {
		return nil, err
	}
	if _, err := c.tr.Write(body); err != nil {
		c.mu.Lock()
		c.isDead = true
		c.deadErr = err
		c.mu.Unlock()
		return nil, err
	}

	ok := true
	return &pb.Msg{Ok: &ok}, nil
}

func (c *udpConn) dead() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isDead, c.deadErr
}

func (c *udpConn) kind() transport.Kind { return transport.KindUDP }

func (c *udpConn) close() error { return c.tr.Close() }
