// internal/report/console.go
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/tamzrod/sci-battery-monitor/internal/poller"
)

// Console prints one fixed-width line per cycle.
type Console struct {
	w io.Writer
}

// NewConsole writes report lines to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Report(res poller.PollResult) {
	ts := Timestamp(res.Elapsed)

	if res.WriteErr != nil {
		fmt.Fprintf(c.w, "%s Error in writing to serial port: %v\n", ts, res.WriteErr)
	}

	if s := res.Sample; s != nil {
		fmt.Fprintf(c.w, "%s State: %d %-24s, %5d mV, %6d mA, %3d C, %5d mAh, %5d mAh\n",
			ts,
			s.State,
			res.State.Name(),
			s.VoltageMV,
			s.CurrentMA,
			s.TemperatureC,
			s.ChargeMAh,
			s.CapacityMAh,
		)
		return
	}

	fmt.Fprintf(c.w, "%s Error! %d bytes remaining!\n", ts, res.Missing)
}

// Timestamp formats elapsed time as seconds.tenths, right-aligned.
func Timestamp(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%6d.%1d", ms/1000, (ms%1000)/100)
}
