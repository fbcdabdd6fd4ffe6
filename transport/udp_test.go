package transport_test

import (
	"net"
	"time"

	"github.com/sabouaram/riemann-go-client/transport"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UDP Transport", func() {
	It("sends a datagram to the connected peer", func() {
		serverAddr, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
		ln, err := net.ListenUDP("udp", serverAddr)
		Expect(err).ToNot(HaveOccurred())
		defer ln.Close()

		tr, err := transport.DialUDP(ln.LocalAddr().String())
		Expect(err).ToNot(HaveOccurred())
		Expect(tr.Kind()).To(Equal(transport.KindUDP))
		defer tr.Close()

		_, err = tr.Write([]byte("datagram"))
		Expect(err).ToNot(HaveOccurred())

		buf := make([]byte, 16)
		_ = ln.SetReadDeadline(timeNowPlus(time.Second))
		n, _, err := ln.ReadFromUDP(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(buf[:n])).To(Equal("datagram"))
	})
})

func timeNowPlus(d time.Duration) time.Time {
	return time.Now().Add(d)
}
