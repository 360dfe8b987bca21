// internal/transport/transport_test.go
package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.bug.st/serial"
)

func TestBugstParity(t *testing.T) {
	assert.Equal(t, serial.NoParity, bugstParity("N"))
	assert.Equal(t, serial.EvenParity, bugstParity("e"))
	assert.Equal(t, serial.OddParity, bugstParity("O"))
	assert.Equal(t, serial.NoParity, bugstParity(""))
}

func TestOpen_MissingDevice(t *testing.T) {
	for _, driver := range []string{"bugst", "goburrow"} {
		c, err := Open(Config{
			Driver:      driver,
			Port:        "/dev/sci-battery-monitor-missing",
			BaudRate:    115200,
			DataBits:    8,
			StopBits:    1,
			Parity:      "N",
			ReadTimeout: 50 * time.Millisecond,
		})
		assert.Error(t, err, driver)
		assert.Nil(t, c, driver)
	}
}
