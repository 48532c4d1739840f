package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JohnScience/sorted-vec2/contexts"
	"github.com/JohnScience/sorted-vec2/lazy"
	"github.com/JohnScience/sorted-vec2/shutdown"
)

// defaultSubsystem names the component producing the log, so readers
// can tell which part of the system generated a message. Stored
// atomically because configuration can race with logging.
var defaultSubsystem atomic.Value //nolint:gochecknoglobals

// configMu serializes ConfigureLoggingWithOptions calls, which mutate
// process-wide state (slog.SetDefault and the legacy log default).
var configMu sync.Mutex //nolint:gochecknoglobals

// contextKey keeps this package's context keys from colliding with
// other packages.
type contextKey string

const (
	muteKey      contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	valuesKey    contextKey = "loggerValues"
)

// Fatal logs an error message, runs the registered shutdown hooks, and
// exits the process. The sleep gives asynchronous log sinks a moment to
// flush before exit.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)

	shutdown.Shutdown()

	time.Sleep(time.Second)

	os.Exit(1)
}

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions configures the process-wide loggers and
// returns the new default. Both the slog default and the standard
// library log default are replaced, so records arriving through either
// path get the same handling, including annotated-error expansion.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMu.Lock()
	defer configMu.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	// Unpack attributes carried by annotated errors (see AnnotateError).
	handler = &errorAttrHandler{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Third-party code logging through the legacy log package lands in
	// the same handler. The old API has no levels, so every such record
	// gets LegacyLevel.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	defaultSubsystem.Store(opts.Subsystem)

	return logger
}

// Option adjusts the logging configuration built by ConfigureLogging.
type Option func(*Options)

// WithJSON switches log output between JSON and text format.
func WithJSON(enabled bool) Option {
	return func(o *Options) {
		o.JSON = enabled
	}
}

// WithMinLevel sets the minimum level a record must have to be emitted.
func WithMinLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithLegacyLevel sets the level assigned to messages arriving through
// the standard library log package.
func WithLegacyLevel(level slog.Level) Option {
	return func(o *Options) {
		o.LegacyLevel = level
	}
}

// WithOutput sets the destination log records are written to.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLogging configures logging with sensible defaults (text
// output, info level, stdout), adjusted by any options given, and
// returns the default logger.
func ConfigureLogging(app string, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem:   app,
		JSON:        false,
		MinLevel:    slog.LevelInfo,
		LegacyLevel: slog.LevelInfo,
		Output:      os.Stdout,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithMuted marks the context so loggers derived from it produce no
// output. Useful for benchmarks and other hot paths where log volume
// would drown everything else.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue(ctx, muteKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := contexts.GetValue[contextKey, bool](ctx, muteKey)

	return ok && muted
}

// WithSubsystem overrides the subsystem name for loggers derived from
// this context. Without an override, the name given to ConfigureLogging
// is used.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	return contexts.WithValue(ctx, subsystemKey, subsystem)
}

// GetSubsystem returns the subsystem for this context: the override set
// by WithSubsystem when present, otherwise the configured default.
func GetSubsystem(ctx context.Context) string {
	if sub, ok := contexts.GetValue[contextKey, string](ctx, subsystemKey); ok {
		return sub
	}

	if def := defaultSubsystem.Load(); def != nil {
		if val, ok := def.(string); ok {
			return val
		}
	}

	return ""
}

// hostname holds the machine name, resolved once on first use.
// nolint:gochecknoglobals
var hostname = lazy.New[string](func() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}

	return h
})

// GetHostname returns the name of the machine the process is running on.
func GetHostname() string {
	return hostname.Get()
}

// nullHandler drops every record. It backs the logger returned for
// muted contexts.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger carrying the subsystem and host attributes. When
// a context is given, its subsystem override, mute flag, and values
// attached via With are honored. Calling Get with no arguments (or a
// nil context) returns the base logger.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := contexts.EnsureContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With(
		"subsystem", GetSubsystem(realCtx),
		"host", hostname.Get())

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}

// With attaches key-value pairs to the context. Loggers obtained from
// Get with this context include them on every record.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return contexts.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := contexts.GetValue[contextKey, []any](ctx, valuesKey)
	if !ok {
		return nil
	}

	return vals
}
