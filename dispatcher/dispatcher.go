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

// Package dispatcher multiplexes concurrent request/response exchanges onto
// one duplex stream transport, matching server replies to callers in strict
// FIFO order since Riemann frames carry no request id.
package dispatcher

import (
	"context"
	"sync"

	"github.com/sabouaram/riemann-go-client/codec"
	rierr "github.com/sabouaram/riemann-go-client/errors"
	"github.com/sabouaram/riemann-go-client/pb"
	"github.com/sabouaram/riemann-go-client/transport"
)

type result struct {
	msg *pb.Msg
	err error
}

type slot struct {
	ch chan result
}

// Dispatcher owns a single stream Transport. Callers hand it a *pb.Msg and
// receive back whatever the server sends in reply, or an error if the
// connection dies before a reply arrives.
type Dispatcher struct {
	tr transport.Transport

	writeMu sync.Mutex

	qMu     sync.Mutex
	queue   []*slot
	dead    bool
	deadErr error
}

// New starts the receive loop over tr and returns a ready Dispatcher.
func New(tr transport.Transport) *Dispatcher {
	d := &Dispatcher{tr: tr}
	go d.recvLoop()
	return d
}

// Send writes msg as one frame and waits for the matching reply, bounded by
// ctx. If ctx expires first, the caller's slot remains queued: should the
// server reply later it is delivered into that now-abandoned slot and
// quietly discarded, per the write-path-atomicity contract - a timeout
// alone never marks the connection dead.
func (d *Dispatcher) Send(ctx context.Context, msg *pb.Msg) (*pb.Msg, error) {
	framed, err := codec.Encode(msg)
	if err != nil {
		return nil, err
	}

	s := &slot{ch: make(chan result, 1)}

	d.writeMu.Lock()
	if err := d.push(s); err != nil {
		d.writeMu.Unlock()
		return nil, err
	}
	_, writeErr := d.tr.Write(framed)
	d.writeMu.Unlock()

	if writeErr != nil {
		d.shutdown(writeErr)
		return nil, writeErr
	}

	select {
	case r := <-s.ch:
		return r.msg, r.err
	case <-ctx.Done():
		return nil, rierr.Wrap(rierr.Timeout, "await reply", ctx.Err())
	}
}

// Close shuts the dispatcher down and closes the underlying transport. Any
// callers still waiting on a reply observe a dead-connection error.
func (d *Dispatcher) Close() error {
	d.shutdown(rierr.New(rierr.IOFailure, "connection closed"))
	return d.tr.Close()
}

// Dead reports whether the dispatcher has stopped servicing requests, and
// if so, the error that caused it.
func (d *Dispatcher) Dead() (bool, error) {
	d.qMu.Lock()
	defer d.qMu.Unlock()
	return d.dead, d.deadErr
}

func (d *Dispatcher) push(s *slot) error {
	d.qMu.Lock()
	defer d.qMu.Unlock()
	if d.dead {
		return d.deadErr
	}
	d.queue = append(d.queue, s)
	return nil
}

func (d *Dispatcher) pop() *slot {
	d.qMu.Lock()
	defer d.qMu.Unlock()
	if len(d.queue) == 0 {
		return nil
	}
	s := d.queue[0]
	d.queue = d.queue[1:]
	return s
}

func (d *Dispatcher) shutdown(err error) {
	d.qMu.Lock()
	if d.dead {
		d.qMu.Unlock()
		return
	}
	d.dead = true
	d.deadErr = err
	pending := d.queue
	d.queue = nil
	d.qMu.Unlock()

	for _, s := range pending {
		s.ch <- result{err: err}
	}
}

// recvLoop reads one frame at a time and feeds it to the oldest waiting
// caller. A read failure, or a frame arriving with nobody queued to receive
// it, ends the loop and marks the dispatcher dead.
func (d *Dispatcher) recvLoop() {
	for {
		msg, err := codec.Decode(d.tr.Reader())
		if err != nil {
			d.shutdown(err)
			return
		}

		s := d.pop()
		if s == nil {
			d.shutdown(rierr.New(rierr.ProtocolError, "reply arrived with no waiting caller"))
			return
		}
		s.ch <- result{msg: msg}
	}
}
