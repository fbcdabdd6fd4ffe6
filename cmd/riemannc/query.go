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
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sabouaram/riemann-go-client/pb"
)

func newQueryCmd() *cobra.Command {
	conn := &connFlags{}

	cmd := &cobra.Command{
		Use:   "query <riemann-query>",
		Short: "Query riemann for data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := conn.newClient()
			if err != nil {
				return err
			}
			defer cli.Close()

			events, err := cli.SendQuery(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(events) == 0 {
				cmd.Println(color.YellowString("no matching events"))
				return nil
			}
			for _, e := range events {
				cmd.Printf("%s %s %s metric=%v host=%s\n",
					color.CyanString(e.GetService()),
					e.GetState(),
					e.GetDescription(),
					metricOf(e),
					e.GetHost())
			}
			return nil
		},
	}

	conn.register(cmd)
	return cmd
}

func metricOf(e pb.Event) interface{} {
	if e.MetricD != nil {
		return *e.MetricD
	}
	if e.MetricF != nil {
		return *e.MetricF
	}
	if e.MetricSint64 != nil {
		return *e.MetricSint64
	}
	return nil
}
