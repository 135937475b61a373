package observability

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/aretw0/ferrule/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics collects per-lesson run counts and durations.
type Metrics struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ferrule_lesson_runs_total",
				Help: "Total number of lesson runs by outcome",
			},
			[]string{"lesson", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ferrule_lesson_duration_seconds",
				Help:    "Duration of lesson procedures",
				Buckets: prometheus.ExponentialBuckets(0.0001, 10, 6),
			},
			[]string{"lesson"},
		),
	}
	m.registry.MustRegister(m.runs, m.duration)
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Hooks returns lifecycle hooks that record every finished lesson.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLessonLeave: func(_ context.Context, e *domain.LessonEvent) {
			status := StatusOK
			if e.IsError {
				status = StatusError
			}
			m.runs.WithLabelValues(e.LessonID, status).Inc()
			m.duration.WithLabelValues(e.LessonID).Observe(e.Duration.Seconds())
		},
	}
}

// LessonStat is the aggregated view of one lesson.
type LessonStat struct {
	Lesson   string
	Runs     int
	Errors   int
	Duration time.Duration
}

// Summary gathers the registry and returns one entry per lesson, sorted by id.
func (m *Metrics) Summary() ([]LessonStat, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	stats := map[string]*LessonStat{}
	get := func(id string) *LessonStat {
		s, ok := stats[id]
		if !ok {
			s = &LessonStat{Lesson: id}
			stats[id] = s
		}
		return s
	}

	for _, mf := range families {
		switch mf.GetName() {
		case "ferrule_lesson_runs_total":
			for _, metric := range mf.GetMetric() {
				s := get(label(metric, "lesson"))
				n := int(metric.GetCounter().GetValue())
				s.Runs += n
				if label(metric, "status") == StatusError {
					s.Errors += n
				}
			}
		case "ferrule_lesson_duration_seconds":
			for _, metric := range mf.GetMetric() {
				s := get(label(metric, "lesson"))
				secs := metric.GetHistogram().GetSampleSum()
				s.Duration += time.Duration(secs * float64(time.Second))
			}
		}
	}

	out := make([]LessonStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lesson < out[j].Lesson })
	return out, nil
}

// WriteSummary prints the summary as an aligned table.
func (m *Metrics) WriteSummary(w io.Writer) error {
	stats, err := m.Summary()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LESSON\tRUNS\tERRORS\tDURATION")
	var total time.Duration
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", s.Lesson, s.Runs, s.Errors, s.Duration.Round(time.Microsecond))
		total += s.Duration
	}
	fmt.Fprintf(tw, "total\t\t\t%s\n", total.Round(time.Microsecond))
	return tw.Flush()
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
