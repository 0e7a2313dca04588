package iso8583

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Processor parses raw ISO8583 messages concurrently. Every input gets its
// own Message; the Spec is shared read-only between goroutines.
type Processor struct {
	spec        *Spec
	strict      bool
	header      HeaderType
	concurrency int
	log         zerolog.Logger
	metrics     *Metrics
}

// ProcessorOption defines a function signature for configuring a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency sets the maximum number of concurrent parses.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithStrictMTI makes every parse check the full MTI domain.
func WithStrictMTI(strict bool) ProcessorOption {
	return func(p *Processor) {
		p.strict = strict
	}
}

// WithHeader strips a transport length prefix before parsing.
func WithHeader(h HeaderType) ProcessorOption {
	return func(p *Processor) {
		p.header = h
	}
}

// WithLogger sets the logger parse failures are reported to.
func WithLogger(log zerolog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.log = log
	}
}

// WithMetrics records parse outcomes in m.
func WithMetrics(m *Metrics) ProcessorOption {
	return func(p *Processor) {
		p.metrics = m
	}
}

// NewProcessor creates a Processor for spec. A nil spec selects Spec1987ASCII.
func NewProcessor(spec *Spec, opts ...ProcessorOption) *Processor {
	if spec == nil {
		spec = Spec1987ASCII
	}
	p := &Processor{
		spec:        spec,
		concurrency: 4,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process parses a single raw message.
func (p *Processor) Process(data []byte) (*Message, error) {
	start := time.Now()
	msg, err := p.parse(data)
	p.metrics.RecordParse(p.spec.Name(), len(data), time.Since(start), err)
	if err != nil {
		p.log.Warn().
			Err(err).
			Str("kind", ErrorKind(err)).
			Int("size", len(data)).
			Msg("Failed to parse message")
		return nil, err
	}
	return msg, nil
}

func (p *Processor) parse(data []byte) (*Message, error) {
	payload, err := Unframe(data, p.header)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return ParseMessage(payload, p.spec, WithStrict(p.strict))
}

// ProcessBatch parses all inputs with at most the configured number of
// goroutines. Results keep the input order; a failed input leaves a nil
// entry and the first failure is returned alongside the partial results.
func (p *Processor) ProcessBatch(ctx context.Context, batch [][]byte) ([]*Message, error) {
	results := make([]*Message, len(batch))
	errs := make([]error, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, data := range batch {
		i, data := i, data
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = p.Process(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ProcessStream parses messages from input and sends them to output until
// input is closed or ctx is cancelled. Inputs that fail to parse are logged
// and dropped. Output order is not guaranteed.
func (p *Processor) ProcessStream(ctx context.Context, input <-chan []byte, output chan<- *Message) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for {
		select {
		case <-gctx.Done():
			_ = g.Wait()
			return ctx.Err()
		case data, ok := <-input:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				msg, err := p.Process(data)
				if err != nil {
					return nil
				}
				select {
				case output <- msg:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
	}
}
