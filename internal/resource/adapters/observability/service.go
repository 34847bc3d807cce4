// Package observability decorates a resource service with tracing, logging,
// and metrics without touching the mapper's semantics.
package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

const tracerName = "github.com/commercekit/commerce-api/internal/resource/adapters/observability"

var _ ports.Service = (*Service)(nil)

// Service wraps an inner resource service with instrumentation. One instance
// is created per collection binding.
type Service struct {
	inner      ports.Service
	collection string
	tracer     trace.Tracer
	logger     *slog.Logger
	metrics    serviceMetrics
}

// Option customizes the decorator.
type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

// WithMeter injects the meter used to create the operation counters.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wires a decorator around the core service for one collection.
func New(inner ports.Service, collection string, opts ...Option) ports.Service {
	s := &Service{
		inner:      inner,
		collection: collection,
		tracer:     nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:     discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = discardLogger()
	}
	return s
}

// Create persists a new document with instrumentation.
func (s *Service) Create(ctx context.Context, body domain.Document) (string, error) {
	ctx, span := s.startSpan(ctx, "Resource.Create")
	defer span.End()

	id, err := s.inner.Create(ctx, body)
	if err != nil {
		return "", s.handleError(ctx, span, err, "create failed")
	}
	s.metrics.record(ctx, s.collection, "create")
	s.logInfo(ctx, "document created", slog.String("document.id", id))
	return id, nil
}

// List fetches every document with instrumentation.
func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	ctx, span := s.startSpan(ctx, "Resource.List")
	defer span.End()

	entries, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "list failed")
	}
	s.metrics.record(ctx, s.collection, "list")
	s.logInfo(ctx, "documents listed", slog.Int("count", len(entries)))
	return entries, nil
}

// Get loads one document with instrumentation.
func (s *Service) Get(ctx context.Context, id string) (domain.Entry, error) {
	ctx, span := s.startSpan(ctx, "Resource.Get", attribute.String("document.id", id))
	defer span.End()

	entry, err := s.inner.Get(ctx, id)
	if err != nil {
		return domain.Entry{}, s.handleError(ctx, span, err, "get failed", slog.String("document.id", id))
	}
	s.metrics.record(ctx, s.collection, "get")
	return entry, nil
}

// Update merges a partial document with instrumentation.
func (s *Service) Update(ctx context.Context, id string, partial domain.Document) (string, error) {
	ctx, span := s.startSpan(ctx, "Resource.Update", attribute.String("document.id", id))
	defer span.End()

	updated, err := s.inner.Update(ctx, id, partial)
	if err != nil {
		return "", s.handleError(ctx, span, err, "update failed", slog.String("document.id", id))
	}
	s.metrics.record(ctx, s.collection, "update")
	s.logInfo(ctx, "document updated", slog.String("document.id", updated), slog.Int("fields", len(partial)))
	return updated, nil
}

// Delete removes a document with instrumentation.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "Resource.Delete", attribute.String("document.id", id))
	defer span.End()

	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "delete failed", slog.String("document.id", id))
	}
	s.metrics.record(ctx, s.collection, "delete")
	s.logInfo(ctx, "document deleted", slog.String("document.id", id))
	return nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("resource.collection", s.collection))
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.recordFailure(ctx, s.collection)
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("collection", s.collection), slog.String("error", err.Error()))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	s.logger.ErrorContext(ctx, msg, args...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("collection", s.collection))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	s.logger.InfoContext(ctx, msg, args...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
