package raggo

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures Indexer behavior.
//
// Options exist to avoid exploding the API surface with constructor
// variants; the zero configuration (no-op logger and metrics) is always
// valid.
type Option func(*options)

// WithLogger configures the structured logger used around index and
// validation operations. Passing nil keeps the no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics configures the metrics collector. Passing nil keeps the no-op
// collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
