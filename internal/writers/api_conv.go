// internal/writers/api_conv.go
package writers

import (
	"hybsim-core/trial"

	"hybsim/pkg/api"
)

// Meta describes the run every record belongs to.
type Meta struct {
	RunID    string
	Mode     trial.Policy
	Sequence string
	Table    string
	Seed     int64
}

// ToAPIRecord converts one record to the v1 wire type. Offset is only set in
// registry mode; zipping always nucleates in register.
func ToAPIRecord(m Meta, worker int, r trial.Record) api.RecordV1 {
	out := api.RecordV1{
		RunID:    m.RunID,
		Mode:     m.Mode.String(),
		Trial:    r.Trial,
		Time:     r.Time,
		Steps:    r.Steps,
		Attempts: r.Attempts,
		Worker:   worker,
	}
	if m.Mode == trial.Registry {
		off := r.Offset
		out.Offset = &off
	}
	return out
}
