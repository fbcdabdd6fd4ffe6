package riemann_test

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	riemann "github.com/sabouaram/riemann-go-client"
	"github.com/sabouaram/riemann-go-client/duration"
	rierr "github.com/sabouaram/riemann-go-client/errors"
	"github.com/sabouaram/riemann-go-client/pb"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func baseOpts(host string, port uint16) riemann.ClientOptions {
	o := riemann.DefaultOptions()
	o.Host = host
	o.Port = port
	o.SocketTimeout = duration.FromMillis(200)
	o.ConnectTimeout = duration.FromMillis(200)
	return o
}

var _ = Describe("Client over TCP", func() {
	It("sends events and succeeds when the server replies ok", func() {
		ln, host, port := stubListener()
		defer ln.Close()

		var gotService string
		acceptOnce(ln, func(_ net.Conn, in *pb.Msg) *pb.Msg {
			if len(in.Events) == 1 {
				gotService = in.Events[0].GetService()
			}
			return okReply(in)
		})

		cli, err := riemann.New(baseOpts(host, port))
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close()

		evt := pb.Event{Service: strp("rustmann_test"), State: strp("ok"), MetricF: f32p(123.4)}
		Expect(cli.SendEvents(context.Background(), evt)).To(Succeed())
		Expect(gotService).To(Equal("rustmann_test"))
	})

	It("surfaces a protocol error and keeps the connection usable for a follow-up call", func() {
		ln, host, port := stubListener()
		defer ln.Close()

		var replyOK bool
		acceptOnce(ln, func(_ net.Conn, in *pb.Msg) *pb.Msg {
			if !replyOK {
				replyOK = true
				return &pb.Msg{Ok: boolp(false), Error: strp("boom")}
			}
			return okReply(in)
		})

		cli, err := riemann.New(baseOpts(host, port))
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close()

		err = cli.SendEvents(context.Background(), pb.Event{Service: strp("x")})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("boom"))

		Expect(cli.SendEvents(context.Background(), pb.Event{Service: strp("y")})).To(Succeed())
	})

	It("returns an I/O failure when the server closes without replying, then reconnects", func() {
		ln, host, port := stubListener()
		defer ln.Close()

		connCh := acceptOnceConn(ln)

		cli, err := riemann.New(baseOpts(host, port))
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close()

		go func() {
			conn := <-connCh
			if conn != nil {
				conn.Close()
			}
		}()

		err = cli.SendEvents(context.Background(), pb.Event{Service: strp("x")})
		Expect(err).To(HaveOccurred())

		acceptOnce(ln, okReply)
		Expect(cli.SendEvents(context.Background(), pb.Event{Service: strp("y")})).To(Succeed())
	})

	It("does not poison the connection when a reply arrives after the caller's timeout", func() {
		ln, host, port := stubListener()
		defer ln.Close()

		connCh := acceptOnceConn(ln)

		opts := baseOpts(host, port)
		opts.SocketTimeout = duration.FromMillis(30)
		cli, err := riemann.New(opts)
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close()

		release := make(chan struct{})
		go func() {
			conn := <-connCh
			if conn == nil {
				return
			}
			defer conn.Close()
			serveLoopDelayed(conn, release)
		}()

		err = cli.SendEvents(context.Background(), pb.Event{Service: strp("slow")})
		Expect(err).To(HaveOccurred())

		close(release)
		time.Sleep(100 * time.Millisecond)

		Expect(cli.SendEvents(context.Background(), pb.Event{Service: strp("fast")})).To(Succeed())
	})
})

var _ = Describe("Client over UDP", func() {
	It("sends events without waiting for any reply", func() {
		addr, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
		sink, err := net.ListenUDP("udp", addr)
		Expect(err).ToNot(HaveOccurred())
		defer sink.Close()

		_, portStr, err := net.SplitHostPort(sink.LocalAddr().String())
		Expect(err).ToNot(HaveOccurred())

		o := riemann.DefaultOptions()
		o.Host = "127.0.0.1"
		fmt.Sscanf(portStr, "%d", &o.Port)
		o.UseUDP = true

		cli, err := riemann.New(o)
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close()

		done := make(chan error, 1)
		go func() {
			done <- cli.SendEvents(context.Background(), pb.Event{Service: strp("udp-svc")})
		}()

		select {
		case err := <-done:
			Expect(err).ToNot(HaveOccurred())
		case <-time.After(time.Second):
			Fail("send_events over UDP blocked waiting on a reply")
		}
	})

	It("rejects queries outright, without ever touching the socket", func() {
		o := riemann.DefaultOptions()
		o.UseUDP = true
		// An unresolvable host: if SendQuery dialed before rejecting the
		// query, this would surface as an IOFailure from the failed
		// resolve/dial instead of Unsupported.
		o.Host = "no-such-host.invalid"
		o.Port = 59999

		cli, err := riemann.New(o)
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close()

		_, err = cli.SendQuery(context.Background(), "service = \"x\"")
		Expect(err).To(HaveOccurred())
		Expect(rierr.Is(err, rierr.Unsupported)).To(BeTrue())
	})
})

var _ = Describe("Concurrent callers", func() {
	It("multiplexes many concurrent send_events calls over a single connect", func() {
		ln, host, port := stubListener()
		defer ln.Close()

		var acceptCount int32
		connCh := acceptOnceConn(ln)

		cli, err := riemann.New(baseOpts(host, port))
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close()

		go func() {
			conn := <-connCh
			if conn == nil {
				return
			}
			atomic.AddInt32(&acceptCount, 1)
			serveLoop(conn, okReply)
		}()

		const n = 10
		var wg sync.WaitGroup
		results := make([]error, n)

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				svc := fmt.Sprintf("c-%d", i)
				results[i] = cli.SendEvents(context.Background(), pb.Event{Service: strp(svc)})
			}(i)
		}
		wg.Wait()

		for i, err := range results {
			Expect(err).ToNot(HaveOccurred(), "caller %d", i)
		}
		Expect(atomic.LoadInt32(&acceptCount)).To(Equal(int32(1)))
	})
})
