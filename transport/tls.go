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
	"crypto/tls"
	"net"
	"time"

	rierr "github.com/sabouaram/riemann-go-client/errors"
)

// DialTLS opens a TCP connection to addr and layers TLS over it using the
// caller-supplied config, performing the handshake before returning. SNI
// follows host, independent of whatever name addr resolved through.
func DialTLS(addr, host string, connectTimeout time.Duration, cfg *tls.Config) (Transport, error) {
	if cfg == nil {
		return nil, rierr.New(rierr.Unsupported, "tls config is required when UseTLS is set")
	}

	d := net.Dialer{Timeout: connectTimeout}
	raw, err := d.Dial("tcp", addr)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, rierr.Wrap(rierr.Timeout, "dial tls "+addr, err)
		}
		return nil, rierr.Wrap(rierr.IOFailure, "dial tls "+addr, err)
	}
	if tc, ok := raw.(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}

	effective := cfg
	if effective.ServerName == "" {
		effective = cfg.Clone()
		effective.ServerName = host
	}

	tlsConn := tls.Client(raw, effective)
	if deadline, ok := connectTimeoutDeadline(connectTimeout); ok {
		_ = tlsConn.SetDeadline(deadline)
	}
	if err := tlsConn.Handshake(); err != nil {
		_ = raw.Close()
		return nil, rierr.Wrap(rierr.IOFailure, "tls handshake "+addr, err)
	}
	_ = tlsConn.SetDeadline(time.Time{})

	return newStreamTransport(tlsConn, KindTLS), nil
}

func connectTimeoutDeadline(d time.Duration) (time.Time, bool) {
	if d <= 0 {
		return time.Time{}, false
	}
	return time.Now().Add(d), true
}
