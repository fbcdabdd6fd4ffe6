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
	"sync"
)

// connState is the client's view of its logical connection: Disconnected,
// Connecting (at most one in-flight attempt, shared by every caller that
// arrives while it is in progress), or Connected.
type connState uint8

const (
	stateDisconnected connState = iota
	stateConnecting
	stateConnected
)

// connManager implements the state machine described for lazy connect:
// single in-flight connect de-duplication, and drop-on-failure.
type connManager struct {
	opts ClientOptions

	mu      sync.Mutex
	state   connState
	current conn
	waiters []chan connectOutcome
}

type connectOutcome struct {
	d   conn
	err error
}

func newConnManager(opts ClientOptions) *connManager {
	return &connManager{opts: opts, state: stateDisconnected}
}

// acquire returns a live conn, connecting if necessary. Concurrent
// callers arriving while a connect is already underway attach to it and
// share its outcome; only one connect attempt runs at a time.
func (m *connManager) acquire() (conn, error) {
	m.mu.Lock()

	switch m.state {
	case stateConnected:
		d := m.current
		m.mu.Unlock()
		if isDead, _ := d.dead(); !isDead {
			return d, nil
		}
		// Discovered dead between calls; fall through to reconnect.
		m.mu.Lock()
		if m.current == d {
			m.state = stateDisconnected
			m.current = nil
		}
	}

	if m.state == stateConnecting {
		wait := make(chan connectOutcome, 1)
		m.waiters = append(m.waiters, wait)
		m.mu.Unlock()
		outcome := <-wait
		return outcome.d, outcome.err
	}

	m.state = stateConnecting
	m.mu.Unlock()

	d, err := connect(m.opts)

	m.mu.Lock()
	waiters := m.waiters
	m.waiters = nil
	if err != nil {
		m.state = stateDisconnected
		m.current = nil
	} else {
		m.state = stateConnected
		m.current = d
	}
	m.mu.Unlock()

	for _, w := range waiters {
		w <- connectOutcome{d: d, err: err}
	}
	return d, err
}

// fail transitions back to Disconnected when the caller that owned d has
// just observed it fail. A different, newer conn already installed by a
// concurrent reconnect is left untouched.
func (m *connManager) fail(d conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == d {
		m.state = stateDisconnected
		m.current = nil
	}
}

// close tears down the current conn, if any.
func (m *connManager) close() error {
	m.mu.Lock()
	d := m.current
	m.state = stateDisconnected
	m.current = nil
	m.mu.Unlock()

	if d == nil {
		return nil
	}
	return d.close()
}
