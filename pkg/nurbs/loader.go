package nurbs

import (
	"context"
	"fmt"

	"github.com/hsiuhsiu/opennurbs-go/pkg/nurbs/logging"
)

// Loader builds curves from named curve documents. The zero value resolves
// names with FSResolver, decodes with JSONDecoder and does not log.
//
// Loading is a single pass: resolve, read, decode, take the first record,
// construct. The first failure is returned to the caller unchanged apart
// from read errors, which are wrapped with the resource name.
type Loader struct {
	Resolver Resolver
	Decoder  Decoder
	Logger   logging.Logger

	// Strict validates the selected record with Descriptor.Validate before
	// anything is allocated.
	Strict bool
}

// LoadFromResource builds a curve from the first record of the document
// called name in scope, using a zero Loader.
func LoadFromResource(name string, scope Scope) (*Curve, error) {
	var l Loader
	return l.Load(name, scope)
}

// Load is LoadContext with a background context.
func (l *Loader) Load(name string, scope Scope) (*Curve, error) {
	return l.LoadContext(context.Background(), name, scope)
}

// LoadContext builds a curve from the first record of the document called
// name in scope. ctx is handed to the logger only; loading never blocks on it.
func (l *Loader) LoadContext(ctx context.Context, name string, scope Scope) (*Curve, error) {
	logger := l.logger().With("resource", name)

	res, err := l.resolver().Resolve(name, scope)
	if err != nil {
		return nil, err
	}

	data, err := res.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read resource %q: %w", res.Name(), err)
	}
	logger.Debug(ctx, "read curve document", "bytes", len(data))

	records, err := l.decoder().Decode(data)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecordsDecoded
	}
	if len(records) > 1 {
		logger.Debug(ctx, "using first curve record", "ignored", len(records)-1)
	}

	first := records[0]
	if l.Strict {
		if err := first.Validate(); err != nil {
			return nil, err
		}
	}

	c := New(first.Degree, first.ControlPoints, first.KnotVector)
	logger.Debug(ctx, "constructed curve",
		"degree", c.Degree(),
		"control_points", c.ControlPointCount(),
		"knots", c.KnotCount(),
	)
	return c, nil
}

func (l *Loader) resolver() Resolver {
	if l.Resolver == nil {
		return FSResolver{}
	}
	return l.Resolver
}

func (l *Loader) decoder() Decoder {
	if l.Decoder == nil {
		return JSONDecoder{}
	}
	return l.Decoder
}

func (l *Loader) logger() logging.Logger {
	if l.Logger == nil {
		return logging.Discard()
	}
	return l.Logger
}
