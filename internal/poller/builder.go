// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/sci-battery-monitor/internal/config"
	"github.com/tamzrod/sci-battery-monitor/internal/transport"
)

// Build opens the serial transport and constructs a Poller.
// The returned closer releases the port; closing it is also how a running
// loop is unwound, via an I/O failure on its next transport call.
func Build(c *cfg.Config, opts ...Option) (*Poller, func() error, error) {
	conn, err := transport.Open(transport.Config{
		Driver:      c.Serial.Driver,
		Port:        c.Serial.Port,
		BaudRate:    c.Serial.BaudRate,
		DataBits:    c.Serial.DataBits,
		StopBits:    c.Serial.StopBits,
		Parity:      c.Serial.Parity,
		ReadTimeout: ms(c.Serial.ReadTimeoutMs),
	})
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			Interval:           ms(c.Poll.IntervalMs),
			SettleDelay:        ms(c.Poll.SettleMs),
			StartupSettleDelay: ms(c.Poll.StartupSettleMs),
			FlushBeforeWrite:   c.Poll.FlushBeforeWrite,
		},
		conn,
		opts...,
	)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return p, conn.Close, nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
