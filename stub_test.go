package riemann_test

import (
	"bufio"
	"net"
	"strconv"

	"github.com/sabouaram/riemann-go-client/codec"
	"github.com/sabouaram/riemann-go-client/pb"

	. "github.com/onsi/gomega"
)

func strp(s string) *string   { return &s }
func boolp(b bool) *bool      { return &b }
func f32p(v float32) *float32 { return &v }

// stubListener returns a loopback TCP listener plus its host and numeric
// port, ready to hand to ClientOptions.
func stubListener() (net.Listener, string, uint16) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).ToNot(HaveOccurred())
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	Expect(err).ToNot(HaveOccurred())
	port, err := strconv.Atoi(portStr)
	Expect(err).ToNot(HaveOccurred())
	return ln, "127.0.0.1", uint16(port)
}

// acceptOnce accepts exactly one connection from ln and hands it to handle
// in its own goroutine.
func acceptOnce(ln net.Listener, handle func(conn net.Conn, in *pb.Msg) *pb.Msg) {
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		for {
			in, err := codec.Decode(r)
			if err != nil {
				return
			}
			out := handle(conn, in)
			if out == nil {
				return
			}
			framed, err := codec.Encode(out)
			if err != nil {
				return
			}
			if _, err := conn.Write(framed); err != nil {
				return
			}
		}
	}()
}

func okReply(in *pb.Msg) *pb.Msg {
	return &pb.Msg{Ok: boolp(true), Events: in.Events}
}

// acceptOnceConn accepts exactly one connection and delivers it on the
// returned channel, letting the caller drive it directly.
func acceptOnceConn(ln net.Listener) <-chan net.Conn {
	ch := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			close(ch)
			return
		}
		ch <- conn
	}()
	return ch
}

// serveLoop reads frames off conn and writes back whatever handle returns,
// until a read or write fails or handle returns nil.
func serveLoop(conn net.Conn, handle func(in *pb.Msg) *pb.Msg) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	for {
		in, err := codec.Decode(r)
		if err != nil {
			return
		}
		out := handle(in)
		if out == nil {
			return
		}
		framed, err := codec.Encode(out)
		if err != nil {
			return
		}
		if _, err := conn.Write(framed); err != nil {
			return
		}
	}
}

// serveLoopDelayed answers the first frame only after release is closed,
// then behaves like serveLoop for everything after.
func serveLoopDelayed(conn net.Conn, release <-chan struct{}) {
	r := bufio.NewReader(conn)
	in, err := codec.Decode(r)
	if err != nil {
		return
	}
	<-release
	framed, err := codec.Encode(okReply(in))
	if err != nil {
		return
	}
	if _, err := conn.Write(framed); err != nil {
		return
	}
	serveLoop(conn, okReply)
}
