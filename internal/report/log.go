// internal/report/log.go
package report

import (
	"go.uber.org/zap"

	"github.com/tamzrod/sci-battery-monitor/internal/poller"
)

// Log emits one structured log entry per cycle.
type Log struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{log: log}
}

func (l *Log) Report(res poller.PollResult) {
	fields := []zap.Field{
		zap.Uint64("seq", res.Seq),
		zap.Duration("elapsed", res.Elapsed),
	}

	if res.WriteErr != nil {
		l.log.Warn("request write failed", append(fields, zap.Error(res.WriteErr))...)
	}
	if res.FlushErr != nil {
		l.log.Warn("input discard failed", append(fields, zap.NamedError("flush_error", res.FlushErr))...)
	}

	if s := res.Sample; s != nil {
		l.log.Debug("battery sample",
			append(fields,
				zap.Uint8("state", s.State),
				zap.String("state_name", res.State.Name()),
				zap.Uint16("voltage_mv", s.VoltageMV),
				zap.Int16("current_ma", s.CurrentMA),
				zap.Int8("temperature_c", s.TemperatureC),
				zap.Uint16("charge_mah", s.ChargeMAh),
				zap.Uint16("capacity_mah", s.CapacityMAh),
			)...,
		)
		if !res.State.Known() {
			l.log.Info("unrecognized charging state", append(fields, zap.Uint8("state", s.State))...)
		}
		return
	}

	fields = append(fields,
		zap.Int("received", res.Received),
		zap.Int("missing", res.Missing),
	)
	if res.ReadErr != nil {
		fields = append(fields, zap.NamedError("read_error", res.ReadErr))
	}
	l.log.Warn("incomplete response frame", fields...)
}
