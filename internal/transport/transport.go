// internal/transport/transport.go
package transport

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Conn is a serial link satisfying poller.Transport plus lifecycle.
type Conn interface {
	Write(p []byte) (int, error)
	ReadByte() (b byte, ok bool, err error)
	DiscardInput() error
	Close() error
}

// Config is the serial line setup applied once at open.
type Config struct {
	Driver      string // bugst | goburrow | sim
	Port        string
	BaudRate    int
	DataBits    int
	StopBits    int
	Parity      string // N | E | O
	ReadTimeout time.Duration
}

// maxDrain bounds DiscardInput on drivers without a native input flush.
const maxDrain = 256

// Open opens and configures the port with the selected driver.
func Open(cfg Config) (Conn, error) {
	if cfg.Port == "" {
		return nil, errors.New("transport: port required")
	}
	if cfg.ReadTimeout <= 0 {
		return nil, errors.New("transport: read timeout must be > 0")
	}

	var (
		conn Conn
		err  error
	)
	switch strings.ToLower(cfg.Driver) {
	case "", "bugst":
		conn, err = openBugst(cfg)
	case "goburrow":
		conn, err = openGoburrow(cfg)
	case "sim":
		conn = NewSim(cfg.Port)
	default:
		err = fmt.Errorf("transport: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}
