package transport_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"time"

	rierr "github.com/sabouaram/riemann-go-client/errors"
	"github.com/sabouaram/riemann-go-client/transport"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func selfSignedTLSConfigs() (serverCfg *tls.Config, clientCfg *tls.Config) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	Expect(err).ToNot(HaveOccurred())

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "127.0.0.1"},
		NotBefore:    time.Unix(0, 0),
		NotAfter:     time.Unix(0, 0).Add(100 * 365 * 24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IsCA:         true,
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	Expect(err).ToNot(HaveOccurred())

	cert := tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}

	leaf, err := x509.ParseCertificate(der)
	Expect(err).ToNot(HaveOccurred())

	pool := x509.NewCertPool()
	pool.AddCert(leaf)

	return &tls.Config{Certificates: []tls.Certificate{cert}},
		&tls.Config{RootCAs: pool, ServerName: "127.0.0.1"}
}

var _ = Describe("TLS Transport", func() {
	It("completes a handshake and exchanges bytes", func() {
		serverCfg, clientCfg := selfSignedTLSConfigs()

		ln, err := tls.Listen("tcp", "127.0.0.1:0", serverCfg)
		Expect(err).ToNot(HaveOccurred())
		defer ln.Close()

		done := make(chan struct{})
		go func() {
			defer close(done)
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
			buf := make([]byte, 4)
			_, _ = conn.Read(buf)
			_, _ = conn.Write(buf)
		}()

		tr, err := transport.DialTLS(ln.Addr().String(), "127.0.0.1", time.Second, clientCfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(tr.Kind()).To(Equal(transport.KindTLS))
		defer tr.Close()

		_, err = tr.Write([]byte("ping"))
		Expect(err).ToNot(HaveOccurred())

		echoed := make([]byte, 4)
		_, err = tr.Reader().Read(echoed)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(echoed)).To(Equal("ping"))

		<-done
	})

	It("rejects a nil tls config as unsupported", func() {
		_, err := transport.DialTLS("127.0.0.1:0", "127.0.0.1", time.Second, nil)
		Expect(err).To(HaveOccurred())
		Expect(rierr.Is(err, rierr.Unsupported)).To(BeTrue())
	})
})
