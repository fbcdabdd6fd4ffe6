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

// Package pb holds the wire types for Riemann's protobuf schema: Msg,
// Event, Attribute, Query and State. Field numbers match Riemann's own
// riemann.proto so this package interoperates with a real Riemann server.
//
// Code shaped like protoc-gen-gogofaster output, hand-written because no
// protoc toolchain runs as part of this build.
package pb

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
)

// Attribute is a key/optional-value pair attached to an Event.
type Attribute struct {
	Key   string
	Value *string
}

func (m *Attribute) Reset()         { *m = Attribute{} }
func (m *Attribute) String() string { return fmt.Sprintf("%+v", *m) }
func (*Attribute) ProtoMessage()    {}

func (m *Attribute) GetKey() string {
	return m.Key
}

func (m *Attribute) GetValue() string {
	if m.Value == nil {
		return ""
	}
	return *m.Value
}

func (m *Attribute) Marshal() ([]byte, error) {
	var buf []byte
	buf = appendString(buf, 1, m.Key)
	if m.Value != nil {
		buf = appendString(buf, 2, *m.Value)
	}
	return buf, nil
}

func (m *Attribute) Unmarshal(data []byte) error {
	*m = Attribute{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := fieldHeader(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			m.Key = string(v)
			data = data[adv:]
		case 2:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Value = &s
			data = data[adv:]
		default:
			adv, err := skipField(data, wireType)
			if err != nil {
				return err
			}
			data = data[adv:]
		}
	}
	return nil
}

// Event is a single Riemann event, per spec.md §3.
type Event struct {
	Time         *int64
	State        *string
	Service      *string
	Host         *string
	Description  *string
	TTL          *float32
	Tags         []string
	Attributes   []*Attribute
	MetricSint64 *int64
	MetricD      *float64
	MetricF      *float32
	TimeMicros   *int64
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return fmt.Sprintf("%+v", *m) }
func (*Event) ProtoMessage()    {}

func (m *Event) GetTime() int64 {
	if m.Time == nil {
		return 0
	}
	return *m.Time
}

func (m *Event) GetState() string {
	if m.State == nil {
		return ""
	}
	return *m.State
}

func (m *Event) GetService() string {
	if m.Service == nil {
		return ""
	}
	return *m.Service
}

func (m *Event) GetHost() string {
	if m.Host == nil {
		return ""
	}
	return *m.Host
}

func (m *Event) GetDescription() string {
	if m.Description == nil {
		return ""
	}
	return *m.Description
}

func (m *Event) GetTTL() float32 {
	if m.TTL == nil {
		return 0
	}
	return *m.TTL
}

func (m *Event) GetMetricSint64() int64 {
	if m.MetricSint64 == nil {
		return 0
	}
	return *m.MetricSint64
}

func (m *Event) GetMetricD() float64 {
	if m.MetricD == nil {
		return 0
	}
	return *m.MetricD
}

func (m *Event) GetMetricF() float32 {
	if m.MetricF == nil {
		return 0
	}
	return *m.MetricF
}

func (m *Event) GetTimeMicros() int64 {
	if m.TimeMicros == nil {
		return 0
	}
	return *m.TimeMicros
}

func (m *Event) Marshal() ([]byte, error) {
	var buf []byte
	if m.Time != nil {
		buf = appendInt64(buf, 1, *m.Time)
	}
	if m.State != nil {
		buf = appendString(buf, 2, *m.State)
	}
	if m.Service != nil {
		buf = appendString(buf, 3, *m.Service)
	}
	if m.Host != nil {
		buf = appendString(buf, 4, *m.Host)
	}
	if m.Description != nil {
		buf = appendString(buf, 5, *m.Description)
	}
	if m.TTL != nil {
		buf = appendFloat32(buf, 7, *m.TTL)
	}
	for _, t := range m.Tags {
		buf = appendString(buf, 8, t)
	}
	for _, a := range m.Attributes {
		ab, err := a.Marshal()
		if err != nil {
			return nil, err
		}
		buf = appendBytesField(buf, 9, ab)
	}
	if m.MetricSint64 != nil {
		buf = appendSint64(buf, 13, *m.MetricSint64)
	}
	if m.MetricD != nil {
		buf = appendFloat64(buf, 14, *m.MetricD)
	}
	if m.MetricF != nil {
		buf = appendFloat32(buf, 15, *m.MetricF)
	}
	if m.TimeMicros != nil {
		buf = appendInt64(buf, 16, *m.TimeMicros)
	}
	return buf, nil
}

func (m *Event) Unmarshal(data []byte) error {
	*m = Event{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := fieldHeader(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1:
			v, adv, err := readVarint(data)
			if err != nil {
				return err
			}
			t := int64(v)
			m.Time = &t
			data = data[adv:]
		case 2:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.State = &s
			data = data[adv:]
		case 3:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Service = &s
			data = data[adv:]
		case 4:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Host = &s
			data = data[adv:]
		case 5:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Description = &s
			data = data[adv:]
		case 7:
			v, err := readFixed32(data)
			if err != nil {
				return err
			}
			f := float32FromBits(v)
			m.TTL = &f
			data = data[4:]
		case 8:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			m.Tags = append(m.Tags, string(v))
			data = data[adv:]
		case 9:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			a := &Attribute{}
			if err := a.Unmarshal(v); err != nil {
				return err
			}
			m.Attributes = append(m.Attributes, a)
			data = data[adv:]
		case 13:
			v, adv, err := readVarint(data)
			if err != nil {
				return err
			}
			s := unzigzag64(v)
			m.MetricSint64 = &s
			data = data[adv:]
		case 14:
			v, err := readFixed64(data)
			if err != nil {
				return err
			}
			d := float64FromBits(v)
			m.MetricD = &d
			data = data[8:]
		case 15:
			v, err := readFixed32(data)
			if err != nil {
				return err
			}
			f := float32FromBits(v)
			m.MetricF = &f
			data = data[4:]
		case 16:
			v, adv, err := readVarint(data)
			if err != nil {
				return err
			}
			t := int64(v)
			m.TimeMicros = &t
			data = data[adv:]
		default:
			adv, err := skipField(data, wireType)
			if err != nil {
				return err
			}
			data = data[adv:]
		}
	}
	return nil
}

// Query is a single Riemann query-language string. The field is named
// String_ (trailing underscore), matching protoc-gen-go's own rename of a
// "string" field to avoid colliding with the generated String() method.
type Query struct {
	String_ *string
}

func (m *Query) Reset()         { *m = Query{} }
func (m *Query) String() string { return fmt.Sprintf("%+v", *m) }
func (*Query) ProtoMessage()    {}

func (m *Query) GetString() string {
	if m.String_ == nil {
		return ""
	}
	return *m.String_
}

func (m *Query) Marshal() ([]byte, error) {
	var buf []byte
	if m.String_ != nil {
		buf = appendString(buf, 1, *m.String_)
	}
	return buf, nil
}

func (m *Query) Unmarshal(data []byte) error {
	*m = Query{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := fieldHeader(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.String_ = &s
			data = data[adv:]
		default:
			adv, err := skipField(data, wireType)
			if err != nil {
				return err
			}
			data = data[adv:]
		}
	}
	return nil
}

// State is Riemann's deprecated state-change message; this client never
// emits it and decodes it only to skip it cleanly in a Msg.
type State struct {
	Time        *int64
	State       *string
	Service     *string
	Host        *string
	Description *string
	Once        *bool
	Tags        []string
	TTL         *float32
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return fmt.Sprintf("%+v", *m) }
func (*State) ProtoMessage()    {}

func (m *State) Marshal() ([]byte, error) {
	var buf []byte
	if m.Time != nil {
		buf = appendInt64(buf, 1, *m.Time)
	}
	if m.State != nil {
		buf = appendString(buf, 2, *m.State)
	}
	if m.Service != nil {
		buf = appendString(buf, 3, *m.Service)
	}
	if m.Host != nil {
		buf = appendString(buf, 4, *m.Host)
	}
	if m.Description != nil {
		buf = appendString(buf, 5, *m.Description)
	}
	if m.Once != nil {
		buf = appendBool(buf, 6, *m.Once)
	}
	for _, t := range m.Tags {
		buf = appendString(buf, 7, t)
	}
	if m.TTL != nil {
		buf = appendFloat32(buf, 8, *m.TTL)
	}
	return buf, nil
}

func (m *State) Unmarshal(data []byte) error {
	*m = State{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := fieldHeader(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 1:
			v, adv, err := readVarint(data)
			if err != nil {
				return err
			}
			t := int64(v)
			m.Time = &t
			data = data[adv:]
		case 2:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.State = &s
			data = data[adv:]
		case 3:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Service = &s
			data = data[adv:]
		case 4:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Host = &s
			data = data[adv:]
		case 5:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Description = &s
			data = data[adv:]
		case 6:
			v, adv, err := readVarint(data)
			if err != nil {
				return err
			}
			b := v != 0
			m.Once = &b
			data = data[adv:]
		case 7:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			m.Tags = append(m.Tags, string(v))
			data = data[adv:]
		case 8:
			v, err := readFixed32(data)
			if err != nil {
				return err
			}
			f := float32FromBits(v)
			m.TTL = &f
			data = data[4:]
		default:
			adv, err := skipField(data, wireType)
			if err != nil {
				return err
			}
			data = data[adv:]
		}
	}
	return nil
}

// Msg is the single container type exchanged over the wire in both
// directions, per spec.md §3.
type Msg struct {
	Ok     *bool
	Error  *string
	States []*State
	Query  *Query
	Events []*Event
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return fmt.Sprintf("%+v", *m) }
func (*Msg) ProtoMessage()    {}

func (m *Msg) GetOk() bool {
	if m.Ok == nil {
		return false
	}
	return *m.Ok
}

func (m *Msg) GetError() string {
	if m.Error == nil {
		return ""
	}
	return *m.Error
}

func (m *Msg) GetEvents() []*Event {
	return m.Events
}

func (m *Msg) Marshal() ([]byte, error) {
	var buf []byte
	if m.Ok != nil {
		buf = appendBool(buf, 2, *m.Ok)
	}
	if m.Error != nil {
		buf = appendString(buf, 3, *m.Error)
	}
	for _, s := range m.States {
		sb, err := s.Marshal()
		if err != nil {
			return nil, err
		}
		buf = appendBytesField(buf, 4, sb)
	}
	if m.Query != nil {
		qb, err := m.Query.Marshal()
		if err != nil {
			return nil, err
		}
		buf = appendBytesField(buf, 5, qb)
	}
	for _, e := range m.Events {
		eb, err := e.Marshal()
		if err != nil {
			return nil, err
		}
		buf = appendBytesField(buf, 6, eb)
	}
	return buf, nil
}

func (m *Msg) Unmarshal(data []byte) error {
	*m = Msg{}
	for len(data) > 0 {
		fieldNum, wireType, n, err := fieldHeader(data)
		if err != nil {
			return err
		}
		data = data[n:]
		switch fieldNum {
		case 2:
			v, adv, err := readVarint(data)
			if err != nil {
				return err
			}
			b := v != 0
			m.Ok = &b
			data = data[adv:]
		case 3:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			s := string(v)
			m.Error = &s
			data = data[adv:]
		case 4:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			st := &State{}
			if err := st.Unmarshal(v); err != nil {
				return err
			}
			m.States = append(m.States, st)
			data = data[adv:]
		case 5:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			q := &Query{}
			if err := q.Unmarshal(v); err != nil {
				return err
			}
			m.Query = q
			data = data[adv:]
		case 6:
			v, adv, err := readLengthDelimited(data)
			if err != nil {
				return err
			}
			e := &Event{}
			if err := e.Unmarshal(v); err != nil {
				return err
			}
			m.Events = append(m.Events, e)
			data = data[adv:]
		default:
			adv, err := skipField(data, wireType)
			if err != nil {
				return err
			}
			data = data[adv:]
		}
	}
	return nil
}

var (
	_ proto.Message = (*Msg)(nil)
	_ proto.Message = (*Event)(nil)
	_ proto.Message = (*Attribute)(nil)
	_ proto.Message = (*Query)(nil)
	_ proto.Message = (*State)(nil)
)
