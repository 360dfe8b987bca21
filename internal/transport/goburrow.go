// internal/transport/goburrow.go
package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goburrow/serial"
)

// goburrowConn uses github.com/goburrow/serial.
// The library has no input flush, so DiscardInput drains until the line is quiet.
type goburrowConn struct {
	port serial.Port
	buf  [1]byte
}

func openGoburrow(cfg Config) (*goburrowConn, error) {
	port, err := serial.Open(&serial.Config{
		Address:  cfg.Port,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   strings.ToUpper(cfg.Parity),
		Timeout:  cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", cfg.Port, err)
	}
	return &goburrowConn{port: port}, nil
}

func (c *goburrowConn) Write(p []byte) (int, error) {
	return c.port.Write(p)
}

func (c *goburrowConn) ReadByte() (byte, bool, error) {
	n, err := c.port.Read(c.buf[:])
	if errors.Is(err, serial.ErrTimeout) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return c.buf[0], true, nil
}

func (c *goburrowConn) DiscardInput() error {
	for i := 0; i < maxDrain; i++ {
		_, ok, err := c.ReadByte()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return fmt.Errorf("transport: input still pending after draining %d bytes", maxDrain)
}

func (c *goburrowConn) Close() error {
	return c.port.Close()
}
