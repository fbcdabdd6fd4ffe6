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

	"github.com/sabouaram/riemann-go-client/dispatcher"
	"github.com/sabouaram/riemann-go-client/pb"
	"github.com/sabouaram/riemann-go-client/transport"
)

// dispatcherConn backs TCP and TLS: request/reply goes through the
// dispatcher's FIFO callback queue.
type dispatcherConn struct {
	tr transport.Transport
	d  *dispatcher.Dispatcher
}

func newDispatcherConn(tr transport.Transport) *dispatcherConn {
	return &dispatcherConn{tr: tr, d: dispatcher.New(tr)}
}

func (c *dispatcherConn) sendMsg(ctx context.Context, msg *pb.Msg) (*pb.Msg, error) {
	return c.d.Send(ctx, msg)
}

func (c *dispatcherConn) dead() (bool, error) {
	return c.d.Dead()
}

func (c *dispatcherConn) kind() transport.Kind { return c.tr.Kind() }

func (c *dispatcherConn) close() error { return c.d.Close() }
