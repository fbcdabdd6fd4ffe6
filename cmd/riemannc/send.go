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
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sabouaram/riemann-go-client/event"
)

func newSendCmd() *cobra.Command {
	conn := &connFlags{}

	var (
		hostname string
		at       int64
		service  string
		tags     string
		ttl      float32
		state    string
		metric   float64
	)

	cmd := &cobra.Command{
		Use:   "send <service> <metric>",
		Short: "Send an event to riemann",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service = args[0]
			var err error
			metric, err = strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}

			cli, err := conn.newClient()
			if err != nil {
				return err
			}
			defer cli.Close()

			b := event.New().Service(service).MetricD(metric)
			if hostname != "" {
				b = b.Host(hostname)
			}
			if at != 0 {
				b = b.Time(at)
			}
			if state != "" {
				b = b.State(state)
			}
			if ttl != 0 {
				b = b.TTL(ttl)
			}
			if tags != "" {
				for _, t := range strings.Split(tags, ",") {
					b = b.Tag(t)
				}
			}

			if err := cli.SendEvents(cmd.Context(), b.Build()); err != nil {
				return err
			}
			cmd.Println(color.GreenString("ok"))
			return nil
		},
	}

	conn.register(cmd)
	cmd.Flags().StringVar(&hostname, "hostname", "", "the host field of this event")
	cmd.Flags().Int64VarP(&at, "time", "t", 0, "the time of this event, unix seconds")
	cmd.Flags().StringVar(&tags, "tags", "", "comma separated tags")
	cmd.Flags().Float32Var(&ttl, "ttl", 0, "event ttl on the riemann index")
	cmd.Flags().StringVar(&state, "state", "", "the state field of the event")

	return cmd
}
