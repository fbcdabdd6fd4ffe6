package dispatcher_test

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/sabouaram/riemann-go-client/codec"
	"github.com/sabouaram/riemann-go-client/dispatcher"
	"github.com/sabouaram/riemann-go-client/pb"
	"github.com/sabouaram/riemann-go-client/transport"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

// dialPair opens a loopback TCP connection and returns the client-side
// dispatcher transport together with the raw server-side conn.
func dialPair() (transport.Transport, net.Conn) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).ToNot(HaveOccurred())
	defer ln.Close()

	serverCh := make(chan net.Conn, 1)
	go func() {
		c, _ := ln.Accept()
		serverCh <- c
	}()

	cli, err := transport.DialTCP(ln.Addr().String(), time.Second)
	Expect(err).ToNot(HaveOccurred())

	server := <-serverCh
	Expect(server).ToNot(BeNil())
	return cli, server
}

// echoServer reads frames off server in arrival order and writes back
// whatever msg builder produces from each, preserving order.
func echoServer(server net.Conn, build func(in *pb.Msg) *pb.Msg) {
	for {
		in, err := codec.Decode(serverReader{server})
		if err != nil {
			return
		}
		out := build(in)
		framed, err := codec.Encode(out)
		if err != nil {
			return
		}
		if _, err := server.Write(framed); err != nil {
			return
		}
	}
}

type serverReader struct{ c net.Conn }

func (s serverReader) Read(p []byte) (int, error) { return s.c.Read(p) }

var _ = Describe("Dispatcher", func() {
	It("matches replies to callers in strict FIFO order under concurrency", func() {
		cli, server := dialPair()
		defer server.Close()

		go echoServer(server, func(in *pb.Msg) *pb.Msg {
			return &pb.Msg{Ok: boolp(true), Events: in.Events}
		})

		d := dispatcher.New(cli)
		defer d.Close()

		const n = 20
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				svc := fmt.Sprintf("svc-%d", i)
				req := &pb.Msg{Events: []*pb.Event{{Service: strp(svc)}}}
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				reply, err := d.Send(ctx, req)
				if err != nil {
					errs[i] = err
					return
				}
				if len(reply.Events) != 1 || reply.Events[0].GetService() != svc {
					errs[i] = fmt.Errorf("mismatched reply for %s: %+v", svc, reply)
				}
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			Expect(err).ToNot(HaveOccurred(), "caller %d", i)
		}
	})

	It("does not poison the connection when the caller's wait times out", func() {
		cli, server := dialPair()
		defer server.Close()

		releaseDelayed := make(chan struct{})
		go func() {
			in, err := codec.Decode(serverReader{server})
			if err != nil {
				return
			}
			<-releaseDelayed
			out := &pb.Msg{Ok: boolp(true), Events: in.Events}
			framed, _ := codec.Encode(out)
			_, _ = server.Write(framed)

			echoServer(server, func(in *pb.Msg) *pb.Msg {
				return &pb.Msg{Ok: boolp(true), Events: in.Events}
			})
		}()

		d := dispatcher.New(cli)
		defer d.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()
		_, err := d.Send(ctx, &pb.Msg{Events: []*pb.Event{{Service: strp("slow")}}})
		Expect(err).To(HaveOccurred())

		close(releaseDelayed)
		time.Sleep(50 * time.Millisecond)

		dead, _ := d.Dead()
		Expect(dead).To(BeFalse())

		ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
		defer cancel2()
		reply, err := d.Send(ctx2, &pb.Msg{Events: []*pb.Event{{Service: strp("fast")}}})
		Expect(err).ToNot(HaveOccurred())
		Expect(reply.Events[0].GetService()).To(Equal("fast"))
	})

	It("marks the connection dead when the write fails", func() {
		cli, server := dialPair()
		_ = server.Close()
		_ = cli.Close()

		d := dispatcher.New(cli)
		defer d.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, err := d.Send(ctx, &pb.Msg{Events: []*pb.Event{{Service: strp("x")}}})
		Expect(err).To(HaveOccurred())

		dead, deadErr := d.Dead()
		Expect(dead).To(BeTrue())
		Expect(deadErr).To(HaveOccurred())
	})

	It("drains pending callers with an error when the read side breaks", func() {
		cli, server := dialPair()

		d := dispatcher.New(cli)
		defer d.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		done := make(chan struct{})
		var sendErr error
		go func() {
			defer close(done)
			_, sendErr = d.Send(ctx, &pb.Msg{Events: []*pb.Event{{Service: strp("orphan")}}})
		}()

		// Give the request time to be written, then sever the socket from
		// the server side without ever replying.
		time.Sleep(20 * time.Millisecond)
		_ = server.Close()

		<-done
		Expect(sendErr).To(HaveOccurred())

		dead, _ := d.Dead()
		Expect(dead).To(BeTrue())
	})
})
