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
	"crypto/tls"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sabouaram/riemann-go-client/duration"
	"github.com/sabouaram/riemann-go-client/logger"
)

var validate = validator.New()

// ClientOptions configures a Client. Zero-value fields are filled in by
// New with the documented defaults.
type ClientOptions struct {
	Host string `validate:"omitempty,hostname|ip"`
	Port uint16 `validate:"-"`

	ConnectTimeout duration.Duration `validate:"-"`
	SocketTimeout  duration.Duration `validate:"-"`

	UseUDP bool
	UseTLS bool

	// TLSConfig is required when UseTLS is set; see tlsconfig.FromFiles.
	TLSConfig *tls.Config `validate:"-"`

	Logger logger.Logger `validate:"-"`
}

const (
	defaultHost           = "127.0.0.1"
	defaultPort           = 5555
	defaultConnectTimeout = 2000 // ms
	defaultSocketTimeout  = 3000 // ms
)

// DefaultOptions returns the documented defaults: 127.0.0.1:5555, a 2s
// connect timeout, a 3s socket timeout, plain TCP.
func DefaultOptions() ClientOptions {
	return ClientOptions{
		Host:           defaultHost,
		Port:           defaultPort,
		ConnectTimeout: duration.FromMillis(defaultConnectTimeout),
		SocketTimeout:  duration.FromMillis(defaultSocketTimeout),
	}
}

// normalize fills in defaults, validates the result, and resolves the
// UseTLS-forces-UseUDP-false rule. It never mutates the receiver.
func (o ClientOptions) normalize() (ClientOptions, error) {
	if o.Host == "" {
		o.Host = defaultHost
	}
	if o.Port == 0 {
		o.Port = defaultPort
	}
	if o.ConnectTimeout == 0 {
		o.ConnectTimeout = duration.FromMillis(defaultConnectTimeout)
	}
	if o.SocketTimeout == 0 {
		o.SocketTimeout = duration.FromMillis(defaultSocketTimeout)
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}

	if o.UseTLS {
		o.UseUDP = false
		if o.TLSConfig == nil {
			return o, fmt.Errorf("riemann: TLSConfig is required when UseTLS is set")
		}
	}

	if err := validate.Struct(o); err != nil {
		return o, fmt.Errorf("riemann: invalid options: %w", err)
	}
	return o, nil
}

// Addr returns the host:port pair transports dial.
func (o ClientOptions) Addr() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}
