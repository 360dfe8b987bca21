// internal/report/multi.go
package report

import "github.com/tamzrod/sci-battery-monitor/internal/poller"

// Multi fans a result out to several sinks, in order.
type Multi []poller.Sink

func (m Multi) Report(res poller.PollResult) {
	for _, s := range m {
		if s != nil {
			s.Report(res)
		}
	}
}
