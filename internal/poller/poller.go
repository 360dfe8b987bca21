// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/sci-battery-monitor/internal/sci"
)

// ErrShortWrite marks a request the transport accepted only partially.
var ErrShortWrite = errors.New("poller: short write")

// Transport abstracts the serial link needed by the poller.
// Blocking calls are bounded by the transport's own timeouts.
type Transport interface {
	Write(p []byte) (int, error)
	// ReadByte returns ok=false when no byte arrived before the read timeout.
	ReadByte() (b byte, ok bool, err error)
	// DiscardInput drops any unread received bytes.
	DiscardInput() error
}

// Default protocol timings.
const (
	DefaultSettleDelay        = 50 * time.Millisecond
	DefaultStartupSettleDelay = 200 * time.Millisecond
)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration

	// SettleDelay is the wait between writing the request and the first read.
	SettleDelay time.Duration
	// StartupSettleDelay is the wait after the start command.
	StartupSettleDelay time.Duration
	// FlushBeforeWrite discards stray input before every request.
	FlushBeforeWrite bool
}

// Poller is a clock-driven SCI battery reader.
type Poller struct {
	cfg   Config
	tr    Transport
	clock Clock
}

// Option customizes a Poller.
type Option func(*Poller)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(p *Poller) {
		p.clock = c
	}
}

// New creates a poller with immutable config.
func New(cfg Config, tr Transport, opts ...Option) (*Poller, error) {
	if tr == nil {
		return nil, errors.New("poller: transport required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.SettleDelay < 0 || cfg.StartupSettleDelay < 0 {
		return nil, errors.New("poller: settle delays must be >= 0")
	}

	p := &Poller{cfg: cfg, tr: tr, clock: SystemClock()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Start sends the one-time start command and waits for the device to settle.
func (p *Poller) Start(ctx context.Context) error {
	cmd := sci.StartCommand()
	if err := p.write(cmd); err != nil {
		return fmt.Errorf("poller: start command: %w", err)
	}
	return p.clock.Sleep(ctx, p.cfg.StartupSettleDelay)
}

// PollOnce performs exactly one request/response exchange.
// It never aborts early: write, read and flush failures are recorded in the result.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	var res PollResult

	if p.cfg.FlushBeforeWrite {
		if err := p.tr.DiscardInput(); err != nil {
			res.FlushErr = err
		}
	}

	res.WriteErr = p.write(sci.EncodeRequest())

	// Device needs time to buffer its reply.
	_ = p.clock.Sleep(ctx, p.cfg.SettleDelay)

	var frame [sci.ResponseLen]byte
	n, rerr := p.readFrame(&frame)
	res.Received = n
	res.Missing = sci.ResponseLen - n
	res.ReadErr = rerr

	// Stray bytes must never bleed into the next cycle.
	if err := p.tr.DiscardInput(); err != nil && res.FlushErr == nil {
		res.FlushErr = err
	}

	if n == sci.ResponseLen {
		s := sci.DecodeResponse(frame)
		res.Sample = &s
		res.State = sci.Classify(s.State)
	}

	return res
}

func (p *Poller) write(b []byte) error {
	n, err := p.tr.Write(b)
	if err != nil {
		return err
	}
	if n < len(b) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, len(b))
	}
	return nil
}

// readFrame reads one byte per attempt and stops at the first empty attempt.
func (p *Poller) readFrame(frame *[sci.ResponseLen]byte) (int, error) {
	for i := 0; i < sci.ResponseLen; i++ {
		b, ok, err := p.tr.ReadByte()
		if err != nil {
			return i, err
		}
		if !ok {
			return i, nil
		}
		frame[i] = b
	}
	return sci.ResponseLen, nil
}
