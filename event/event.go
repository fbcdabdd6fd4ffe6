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

// Package event is a fluent builder for pb.Event values. It never mutates a
// value once Build has returned it.
package event

import "github.com/sabouaram/riemann-go-client/pb"

// Builder accumulates Event fields; each setter returns a new Builder,
// leaving earlier Builder values - and any already-built Event - untouched.
type Builder struct {
	e pb.Event
}

// New starts a fresh Builder.
func New() Builder {
	return Builder{}
}

func (b Builder) Time(t int64) Builder {
	b.e.Time = &t
	return b
}

func (b Builder) TimeMicros(t int64) Builder {
	b.e.TimeMicros = &t
	return b
}

func (b Builder) State(s string) Builder {
	b.e.State = &s
	return b
}

func (b Builder) Service(s string) Builder {
	b.e.Service = &s
	return b
}

func (b Builder) Host(h string) Builder {
	b.e.Host = &h
	return b
}

func (b Builder) Description(d string) Builder {
	b.e.Description = &d
	return b
}

// Tag appends one tag, preserving insertion order and duplicates.
func (b Builder) Tag(tag string) Builder {
	b.e.Tags = append(append([]string{}, b.e.Tags...), tag)
	return b
}

// Tags appends all given tags, preserving order.
func (b Builder) Tags(tags ...string) Builder {
	b.e.Tags = append(append([]string{}, b.e.Tags...), tags...)
	return b
}

func (b Builder) TTL(ttl float32) Builder {
	b.e.TTL = &ttl
	return b
}

func (b Builder) MetricF(m float32) Builder {
	b.e.MetricF = &m
	return b
}

func (b Builder) MetricD(m float64) Builder {
	b.e.MetricD = &m
	return b
}

func (b Builder) MetricSint64(m int64) Builder {
	b.e.MetricSint64 = &m
	return b
}

// Attribute appends one key/optional-value attribute. Pass a nil value to
// record a key with no value.
func (b Builder) Attribute(key string, value *string) Builder {
	attrs := append([]*pb.Attribute{}, b.e.Attributes...)
	attrs = append(attrs, &pb.Attribute{Key: key, Value: value})
	b.e.Attributes = attrs
	return b
}

// Build returns the constructed Event. The returned value is never mutated
// by further use of the Builder it came from.
func (b Builder) Build() pb.Event {
	out := b.e
	out.Tags = append([]string(nil), b.e.Tags...)
	out.Attributes = append([]*pb.Attribute(nil), b.e.Attributes...)
	return out
}
