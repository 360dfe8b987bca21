// internal/writer/ingest/client.go
package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

// Raw Ingest v1 header:
//
//	0-1  magic "RI"
//	2    version
//	3    area
//	4-5  unit id
//	6-7  address
//	8-9  register count
//	10+  registers, big-endian
const (
	HeaderLen = 10

	magic   uint16 = 0x5249
	version byte   = 0x01
)

// Reply status byte.
const (
	StatusOK       byte = 0x00
	StatusRejected byte = 0x01
)

// ErrRejected is returned when the endpoint answers StatusRejected.
var ErrRejected = errors.New("writer ingest: rejected")

const defaultTimeout = 2 * time.Second

// Packet is one register block addressed to a unit's memory area.
type Packet struct {
	Area      byte
	UnitID    uint8
	Address   uint16
	Registers []uint16
}

// MarshalBinary encodes p as a Raw Ingest v1 frame.
func (p Packet) MarshalBinary() ([]byte, error) {
	if len(p.Registers) > 0xFFFF {
		return nil, fmt.Errorf("writer ingest: %d registers exceed frame count", len(p.Registers))
	}

	buf := make([]byte, HeaderLen+2*len(p.Registers))
	binary.BigEndian.PutUint16(buf[0:2], magic)
	buf[2] = version
	buf[3] = p.Area
	binary.BigEndian.PutUint16(buf[4:6], uint16(p.UnitID))
	binary.BigEndian.PutUint16(buf[6:8], p.Address)
	binary.BigEndian.PutUint16(buf[8:10], uint16(len(p.Registers)))

	body := buf[HeaderLen:]
	for i, r := range p.Registers {
		binary.BigEndian.PutUint16(body[2*i:], r)
	}
	return buf, nil
}

// EndpointClient pushes register blocks to a Raw Ingest listener.
// Each packet uses its own TCP connection.
type EndpointClient struct {
	endpoint string
	timeout  time.Duration
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &EndpointClient{endpoint: cfg.Endpoint, timeout: cfg.Timeout}, nil
}

// Close is a no-op; connections never outlive a single send.
func (c *EndpointClient) Close() error { return nil }

func (c *EndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	return c.Send(Packet{Area: area, UnitID: unitID, Address: addr, Registers: regs})
}

// Send delivers p and waits for the one-byte reply.
func (c *EndpointClient) Send(p Packet) error {
	frame, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return fmt.Errorf("writer ingest: dial: %w", err)
	}
	defer conn.Close()

	// One deadline covers the write and the reply.
	_ = conn.SetDeadline(time.Now().Add(c.timeout))

	// net.Conn writes either complete or fail.
	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("writer ingest: write: %w", err)
	}

	var reply [1]byte
	if _, err := io.ReadFull(conn, reply[:]); err != nil {
		return fmt.Errorf("writer ingest: read status: %w", err)
	}

	switch reply[0] {
	case StatusOK:
		return nil
	case StatusRejected:
		return ErrRejected
	default:
		return fmt.Errorf("writer ingest: unknown status 0x%02x", reply[0])
	}
}
