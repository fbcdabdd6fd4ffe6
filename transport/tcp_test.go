package transport_test

import (
	"net"
	"time"

	"github.com/sabouaram/riemann-go-client/transport"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TCP Transport", func() {
	var ln net.Listener

	BeforeEach(func() {
		var err error
		ln, err = net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		_ = ln.Close()
	})

	It("connects and exchanges bytes with the listener", func() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
			buf := make([]byte, 5)
			_, _ = conn.Read(buf)
			_, _ = conn.Write(buf)
		}()

		tr, err := transport.DialTCP(ln.Addr().String(), time.Second)
		Expect(err).ToNot(HaveOccurred())
		Expect(tr.Kind()).To(Equal(transport.KindTCP))
		defer tr.Close()

		_, err = tr.Write([]byte("hello"))
		Expect(err).ToNot(HaveOccurred())

		echoed := make([]byte, 5)
		_, err = tr.Reader().Read(echoed)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(echoed)).To(Equal("hello"))

		<-done
	})

	It("reports a timeout when nothing answers the port", func() {
		// 10.255.255.1 is a non-routable address commonly used to force a
		// connect timeout rather than an immediate refusal.
		_, err := transport.DialTCP("10.255.255.1:5555", 50*time.Millisecond)
		Expect(err).To(HaveOccurred())
	})

	It("fails fast when the port refuses the connection", func() {
		_ = ln.Close()
		_, err := transport.DialTCP(ln.Addr().String(), time.Second)
		Expect(err).To(HaveOccurred())
	})
})
