package raggo

import (
	"context"
	"time"

	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/ragged"
	"github.com/hupe1980/raggo/slicing"
	"github.com/hupe1980/raggo/union"
)

// Array is the common surface of every raggo container.
type Array = core.Array

// Term is one component of a multi-dimensional index expression.
type Term = slicing.Term

// Indexer is the facade over the indexing engine, adding structured logging
// and metrics around evaluations. The zero value is not usable; construct
// with New.
//
// An Indexer is stateless apart from its configuration and safe for
// concurrent use.
type Indexer struct {
	logger  *Logger
	metrics MetricsCollector
}

// New creates an Indexer. Without options, logging and metrics are no-ops.
func New(opts ...Option) *Indexer {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Indexer{logger: o.logger, metrics: o.metrics}
}

// Index evaluates a multi-term index expression against an array. The result
// is an Array, or a dtype.Value when the expression consumes every
// dimension.
//
// The context carries through to log output only; evaluation is synchronous
// and runs to completion.
func (ix *Indexer) Index(ctx context.Context, a Array, terms ...Term) (any, error) {
	start := time.Now()
	out, err := ragged.Apply(a, terms...)
	ix.metrics.RecordIndex(len(terms), time.Since(start), err)
	ix.logger.LogIndex(ctx, len(terms), a.Len(), err)
	return out, err
}

// Validate runs a union container's lazy cross-structure validation.
func (ix *Indexer) Validate(ctx context.Context, u *union.Union) error {
	start := time.Now()
	err := u.Validate()
	ix.metrics.RecordValidate(time.Since(start), err)
	ix.logger.LogValidate(ctx, u.Len(), len(u.Contents()), err)
	return err
}
