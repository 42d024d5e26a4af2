package algorithm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/diveplanner-go/log"
	"github.com/mpapenbr/diveplanner-go/pkg/profile"
)

// Traced records a span and counts calls of the wrapped algorithm
type Traced struct {
	algorithm Algorithm
	tracer    trace.Tracer
	meter     metric.Meter
	calls     metric.Int64Counter
}

type TracedOption func(*Traced)

func WithMeter(meter metric.Meter) TracedOption {
	return func(t *Traced) {
		t.meter = meter
	}
}

func WithTracer(tracer trace.Tracer) TracedOption {
	return func(t *Traced) {
		t.tracer = tracer
	}
}

func NewTraced(a Algorithm, opts ...TracedOption) *Traced {
	ret := &Traced{algorithm: a}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tracer == nil {
		ret.tracer = otel.Tracer("dpl")
	}
	if ret.meter == nil {
		ret.meter = otel.Meter("dpl-algorithm")
	}
	var err error
	ret.calls, err = ret.meter.Int64Counter("algorithm_calls",
		metric.WithDescription("calls of the decompression algorithm"))
	if err != nil {
		log.Default().Warn("Could not create algorithm counter", log.ErrorField(err))
		ret.calls = noop.Int64Counter{}
	}
	return ret
}

//nolint:whitespace // readability
func (t *Traced) Decompression(
	ctx context.Context,
	p *Params,
) (*profile.CalculatedProfile, error) {
	ctx, span := t.tracer.Start(ctx, "algorithm.Decompression")
	defer span.End()
	if p != nil && p.Segments != nil {
		span.SetAttributes(attribute.Int("segments", p.Segments.Len()))
	}
	t.calls.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "decompression")))
	ret, err := t.algorithm.Decompression(ctx, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("calculated", ret.Segments.Len()))
	return ret, nil
}

func (t *Traced) NoDecoLimit(ctx context.Context, p *Params) (float64, error) {
	ctx, span := t.tracer.Start(ctx, "algorithm.NoDecoLimit")
	defer span.End()
	t.calls.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "noDecoLimit")))
	ret, err := t.algorithm.NoDecoLimit(ctx, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Float64("minutes", ret))
	return ret, nil
}
