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
	"github.com/sabouaram/riemann-go-client/transport"
)

// conn is what the state machine hands out: something that can carry one
// Msg exchange and report whether it has died. Stream transports route
// through the dispatcher's FIFO; UDP has no reply to wait for.
type conn interface {
	sendMsg(ctx context.Context, msg *pb.Msg) (*pb.Msg, error)
	dead() (bool, error)
	kind() transport.Kind
	close() error
}

// connect dials a transport per opts and wraps it in the conn
// implementation appropriate to that transport kind. TCP and TLS dials are
// bounded by ConnectTimeout; the UDP dial is not given a timeout.
func connect(opts ClientOptions) (conn, error) {
	addr := opts.Addr()
	timeout := opts.ConnectTimeout.Time()

	switch {
	case opts.UseTLS:
		tr, err := transport.DialTLS(addr, opts.Host, timeout, opts.TLSConfig)
		if err != nil {
			return nil, err
		}
		return newDispatcherConn(tr), nil
	case opts.UseUDP:
		tr, err := transport.DialUDP(addr)
		if err != nil {
			return nil, err
		}
		return newUDPConn(tr), nil
	default:
		tr, err := transport.DialTCP(addr, timeout)
		if err != nil {
			return nil, err
		}
		return newDispatcherConn(tr), nil
	}
}

var errUDPUnsupported = rierr.New(rierr.Unsupported, "queries are not supported over UDP")
