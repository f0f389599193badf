package dispatch

import (
	"io"
	"log/slog"

	"github.com/roach88/numeric/internal/num"
	"github.com/roach88/numeric/internal/textenc"
)

// Dispatcher resolves operators between numeric values of possibly
// different kinds. It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	enc    *textenc.Encoding
	logger *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithEncoding sets the encoding used to render operands inside coercion
// error messages.
//
// Default: UTF-8
func WithEncoding(enc *textenc.Encoding) Option {
	return func(d *Dispatcher) {
		if enc != nil {
			d.enc = enc
		}
	}
}

// WithLogger sets the logger for coercion-path debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		enc:    textenc.UTF8,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Default is the UTF-8 dispatcher used by the package-level functions.
var Default = New()

// Encoding returns the encoding used for inspected operands.
func (d *Dispatcher) Encoding() *textenc.Encoding {
	return d.enc
}

// Inspect renders v the way coercion error messages show it.
func (d *Dispatcher) Inspect(v num.Value) string {
	return num.Inspect(v, d.enc)
}

// Apply evaluates op on left and right with Default.
func Apply(op num.Op, left, right num.Value) (num.Value, error) {
	return Default.Apply(op, left, right)
}

// Compare performs a three-way comparison with Default.
func Compare(left, right num.Value) num.Ordering {
	return Default.Compare(left, right)
}

// Relational evaluates a relational operator with Default.
func Relational(op num.Op, left, right num.Value) (bool, error) {
	return Default.Relational(op, left, right)
}

// Equal reports numeric equality with Default.
func Equal(left, right num.Value) bool {
	return Default.Equal(left, right)
}
