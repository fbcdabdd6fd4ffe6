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

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	riemann "github.com/sabouaram/riemann-go-client"
	"github.com/sabouaram/riemann-go-client/duration"
	"github.com/sabouaram/riemann-go-client/tlsconfig"
)

var version = "dev"

// connFlags is shared by every subcommand that needs a Client.
type connFlags struct {
	host           string
	port           uint16
	useUDP         bool
	useTLS         bool
	tlsCert        string
	tlsKey         string
	tlsCA          string
	connectTimeout int
	socketTimeout  int
}

func (f *connFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.host, "host", "H", "127.0.0.1", "riemann host")
	cmd.Flags().Uint16VarP(&f.port, "port", "p", 5555, "riemann port")
	cmd.Flags().BoolVar(&f.useUDP, "udp", false, "send over UDP instead of TCP")
	cmd.Flags().BoolVar(&f.useTLS, "tls", false, "connect over TLS")
	cmd.Flags().StringVar(&f.tlsCert, "tls-cert", "", "client certificate file (TLS)")
	cmd.Flags().StringVar(&f.tlsKey, "tls-key", "", "client key file (TLS)")
	cmd.Flags().StringVar(&f.tlsCA, "tls-ca", "", "CA bundle file (TLS)")
	cmd.Flags().IntVar(&f.connectTimeout, "connect-timeout-ms", 2000, "connect timeout in milliseconds")
	cmd.Flags().IntVar(&f.socketTimeout, "socket-timeout-ms", 3000, "socket timeout in milliseconds")
}

func (f *connFlags) newClient() (*riemann.Client, error) {
	opts := riemann.DefaultOptions()
	opts.Host = f.host
	opts.Port = f.port
	opts.UseUDP = f.useUDP
	opts.UseTLS = f.useTLS
	opts.ConnectTimeout = duration.FromMillis(int64(f.connectTimeout))
	opts.SocketTimeout = duration.FromMillis(int64(f.socketTimeout))

	if f.useTLS {
		cfg, err := tlsconfig.FromFiles(f.tlsCert, f.tlsKey, f.tlsCA)
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = cfg
	}

	return riemann.New(opts)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "riemannc",
		Short:         "A simple commandline interface for riemann.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newSendCmd())
	cmd.AddCommand(newQueryCmd())
	return cmd
}

func printErr(err error) {
	_, _ = fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
}
