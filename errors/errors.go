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

// Package errors provides the error taxonomy used across the client: a
// small CodeError classification plus an Error interface carrying an
// optional parent, compatible with errors.Is/errors.As.
package errors

import (
	"errors"
	"fmt"
)

// CodeError classifies a failure the way spec.md §7 enumerates them.
type CodeError uint8

const (
	// UnknownError is the zero value, used only as a fallback.
	UnknownError CodeError = iota
	// IOFailure covers connection refused, reset, EOF mid-frame, TLS handshake
	// failure. Marks the connection dead.
	IOFailure
	// Timeout covers connect_timeout_ms and socket_timeout_ms expiry. A
	// connect timeout marks the connection dead; a socket timeout does not.
	Timeout
	// CodecFailure covers serialize/parse errors. Marks the connection dead
	// because frame boundaries are no longer trustworthy.
	CodecFailure
	// ProtocolError is a framed response with ok == false. Does not mark the
	// connection dead.
	ProtocolError
	// Unsupported covers operations the transport cannot perform, e.g. a
	// query over UDP.
	Unsupported
)

func (c CodeError) String() string {
	switch c {
	case IOFailure:
		return "io failure"
	case Timeout:
		return "timeout"
	case CodecFailure:
		return "codec failure"
	case ProtocolError:
		return "riemann protocol error"
	case Unsupported:
		return "unsupported operation"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by the transport, codec, dispatcher and
// client send paths. Option validation, duration parsing and tlsconfig
// return plain errors.
type Error interface {
	error
	Code() CodeError
	Unwrap() error
}

type clientError struct {
	code   CodeError
	msg    string
	parent error
}

func (e *clientError) Error() string {
	if e.parent != nil {
		return fmt.Sprintf("%s: %s: %s", e.code, e.msg, e.parent.Error())
	}
	if e.msg != "" {
		return fmt.Sprintf("%s: %s", e.code, e.msg)
	}
	return e.code.String()
}

func (e *clientError) Code() CodeError { return e.code }
func (e *clientError) Unwrap() error   { return e.parent }

// New builds an Error of the given kind with a plain message, no parent.
func New(code CodeError, msg string) Error {
	return &clientError{code: code, msg: msg}
}

// Wrap builds an Error of the given kind around an underlying cause.
func Wrap(code CodeError, msg string, parent error) Error {
	return &clientError{code: code, msg: msg, parent: parent}
}

// Is reports whether err carries the given CodeError, walking Unwrap chains.
func Is(err error, code CodeError) bool {
	var e Error
	for err != nil {
		if errors.As(err, &e) {
			if e.Code() == code {
				return true
			}
			err = e.Unwrap()
			e = nil
			continue
		}
		return false
	}
	return false
}
