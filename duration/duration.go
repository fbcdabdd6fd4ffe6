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

// Package duration wraps time.Duration so timeout fields in ClientOptions
// can be set either as a plain millisecond count or as a parsed string
// ("2s", "500ms"), and round-trip through JSON. No YAML marshaling methods
// are defined.
package duration

import (
	"fmt"
	"strconv"
	"time"
)

// Duration is a time.Duration that also accepts milliseconds or a parseable
// string when decoded from JSON.
type Duration time.Duration

// FromMillis builds a Duration from a millisecond count.
func FromMillis(ms int64) Duration {
	return Duration(time.Duration(ms) * time.Millisecond)
}

// Time returns the standard library time.Duration.
func (d Duration) Time() time.Duration {
	return time.Duration(d)
}

// Milliseconds returns the duration as a millisecond count.
func (d Duration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Parse parses a string representing a duration, accepting anything
// time.ParseDuration accepts plus a bare integer interpreted as milliseconds.
func Parse(s string) (Duration, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromMillis(ms), nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration: invalid value %q: %w", s, err)
	}
	return Duration(v), nil
}

// MarshalJSON renders the duration as its canonical string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts a quoted duration string or a bare millisecond number.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = unquoted
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
