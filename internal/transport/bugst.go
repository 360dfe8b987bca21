// internal/transport/bugst.go
package transport

import (
	"fmt"
	"strings"

	"go.bug.st/serial"
)

// bugstConn uses go.bug.st/serial. Reads return 0 bytes on timeout.
type bugstConn struct {
	port serial.Port
	buf  [1]byte
}

func openBugst(cfg Config) (*bugstConn, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		Parity:   bugstParity(cfg.Parity),
		StopBits: serial.OneStopBit,
	}
	if cfg.StopBits == 2 {
		mode.StopBits = serial.TwoStopBits
	}

	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", cfg.Port, err)
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("transport: set read timeout on %s: %w", cfg.Port, err)
	}

	return &bugstConn{port: port}, nil
}

func bugstParity(p string) serial.Parity {
	switch strings.ToUpper(p) {
	case "E":
		return serial.EvenParity
	case "O":
		return serial.OddParity
	default:
		return serial.NoParity
	}
}

func (c *bugstConn) Write(p []byte) (int, error) {
	return c.port.Write(p)
}

func (c *bugstConn) ReadByte() (byte, bool, error) {
	n, err := c.port.Read(c.buf[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return c.buf[0], true, nil
}

func (c *bugstConn) DiscardInput() error {
	return c.port.ResetInputBuffer()
}

func (c *bugstConn) Close() error {
	return c.port.Close()
}
