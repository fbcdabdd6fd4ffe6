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

// Package metrics periodically drains a prometheus.Gatherer and forwards
// each sample to Riemann as an event, instead of serving it over HTTP for a
// scraper to pull.
package metrics

import (
	"context"
	"fmt"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sabouaram/riemann-go-client/duration"
	"github.com/sabouaram/riemann-go-client/event"
	"github.com/sabouaram/riemann-go-client/logger"
	"github.com/sabouaram/riemann-go-client/pb"
)

func timerFor(d duration.Duration) *time.Ticker {
	period := d.Time()
	if period <= 0 {
		period = 10 * time.Second
	}
	return time.NewTicker(period)
}

// Sender is the subset of *riemann.Client a Reporter needs. Declaring it
// here instead of importing the root package keeps metrics free to be used
// without pulling in the whole client surface in tests.
type Sender interface {
	SendEvents(ctx context.Context, events ...pb.Event) error
}

// Reporter drains a Gatherer on a fixed period and submits every sample as
// a Riemann event, tagged with the metric's own name and labels.
type Reporter struct {
	gatherer prometheus.Gatherer
	client   Sender
	period   duration.Duration
	host     string
	log      logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a Reporter. host is stamped on every emitted event; pass the
// empty string to omit it and let the server fill in its own notion of host.
func New(gatherer prometheus.Gatherer, client Sender, period duration.Duration, host string, log logger.Logger) *Reporter {
	if log == nil {
		log = logger.Nop()
	}
	return &Reporter{gatherer: gatherer, client: client, period: period, host: host, log: log}
}

// Start launches the periodic drain loop in the background. Stop, or
// cancelling ctx, ends it.
func (r *Reporter) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		r.run(ctx)
	}()
}

// Stop ends the drain loop and waits for the in-flight tick, if any, to
// finish.
func (r *Reporter) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

func (r *Reporter) run(ctx context.Context) {
	t := timerFor(r.period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.tick(ctx)
		}
	}
}

func (r *Reporter) tick(ctx context.Context) {
	families, err := r.gatherer.Gather()
	if err != nil {
		r.log.WithField("error", err).Warn("metrics: gather failed")
		return
	}

	events := eventsFromFamilies(families, r.host)
	if len(events) == 0 {
		return
	}
	if err := r.client.SendEvents(ctx, events...); err != nil {
		r.log.WithField("error", err).Warn("metrics: send_events failed")
	}
}

// eventsFromFamilies flattens every sample of every metric family into one
// Riemann event apiece, carrying the family name as the service and each
// label pair as a tag.
func eventsFromFamilies(families []*dto.MetricFamily, host string) []pb.Event {
	var out []pb.Event
	for _, fam := range families {
		name := fam.GetName()
		for _, m := range fam.GetMetric() {
			b := event.New().Service(name)
			if host != "" {
				b = b.Host(host)
			}
			for _, l := range m.GetLabel() {
				b = b.Tag(fmt.Sprintf("%s=%s", l.GetName(), l.GetValue()))
			}

			value, ok := sampleValue(fam.GetType(), m)
			if !ok {
				continue
			}
			out = append(out, b.MetricD(value).Build())
		}
	}
	return out
}

func sampleValue(kind dto.MetricType, m *dto.Metric) (float64, bool) {
	switch kind {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue(), true
	case dto.MetricType_SUMMARY:
		return m.GetSummary().GetSampleSum(), true
	case dto.MetricType_HISTOGRAM:
		return m.GetHistogram().GetSampleSum(), true
	default:
		return 0, false
	}
}
