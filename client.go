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

	rierr "github.com/sabouaram/riemann-go-client/errors"
	"github.com/sabouaram/riemann-go-client/pb"
)

// Client is safe for concurrent use by many goroutines. It holds no
// per-call state; all coordination lives in its connection manager and,
// once connected, the dispatcher behind it.
type Client struct {
	opts ClientOptions
	conn *connManager
}

// New builds a Client from opts, filling in documented defaults and
// validating the result. It does not connect; the first call to
// SendEvents or SendQuery triggers the connect.
func New(opts ClientOptions) (*Client, error) {
	normalized, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return &Client{opts: normalized, conn: newConnManager(normalized)}, nil
}

// SendEvents submits one or more events. Over TCP/TLS it waits for the
// server's acknowledgement, bounded by SocketTimeout, and returns a
// protocol error if the server replies ok=false. Over UDP it returns as
// soon as the datagram is written; Riemann sends no reply on that path.
func (c *Client) SendEvents(ctx context.Context, events ...pb.Event) error {
	cn, err := c.conn.acquire()
	if err != nil {
		return err
	}

	msg := &pb.Msg{Events: toEventPointers(events)}

	ctx, cancel := c.boundedContext(ctx)
	defer cancel()

	reply, err := cn.sendMsg(ctx, msg)
	if err != nil {
		if !rierr.Is(err, rierr.Timeout) {
			c.conn.fail(cn)
		}
		return err
	}

	if !reply.GetOk() {
		return rierr.New(rierr.ProtocolError, reply.GetError())
	}
	return nil
}

// SendQuery submits a Riemann query and returns the matching events. It is
// rejected outright on a UDP-configured client, since queries require a
// reply that UDP cannot carry.
func (c *Client) SendQuery(ctx context.Context, query string) ([]pb.Event, error) {
	if c.opts.UseUDP {
		return nil, errUDPUnsupported
	}

	cn, err := c.conn.acquire()
	if err != nil {
		return nil, err
	}

	q := query
	msg := &pb.Msg{Query: &pb.Query{String_: &q}}

	ctx, cancel := c.boundedContext(ctx)
	defer cancel()

	reply, err := cn.sendMsg(ctx, msg)
	if err != nil {
		if !rierr.Is(err, rierr.Timeout) {
			c.conn.fail(cn)
		}
		return nil, err
	}

	if !reply.GetOk() {
		return nil, rierr.New(rierr.ProtocolError, reply.GetError())
	}
	return fromEventPointers(reply.Events), nil
}

// Close tears down the current connection, if any. A subsequent call
// reconnects lazily as usual.
func (c *Client) Close() error {
	return c.conn.close()
}

func (c *Client) boundedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.opts.SocketTimeout.Time())
}

func toEventPointers(events []pb.Event) []*pb.Event {
	out := make([]*pb.Event, len(events))
	for i := range events {
		e := events[i]
		out[i] = &e
	}
	return out
}

func fromEventPointers(events []*pb.Event) []pb.Event {
	out := make([]pb.Event, 0, len(events))
	for _, e := range events {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}
