// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for one successful trial.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	RunID    string  `json:"run_id"`
	Mode     string  `json:"mode"` // "registry" | "zipping"
	Trial    int     `json:"trial"`
	Offset   *int    `json:"offset,omitempty"` // registry mode only
	Time     float64 `json:"time"`
	Steps    int64   `json:"steps"`
	Attempts int     `json:"attempts,omitempty"` // nucleations since the previous success
	Worker   int     `json:"worker,omitempty"`
}

// SummaryV1 wraps a whole run for --output json.
type SummaryV1 struct {
	RunID     string     `json:"run_id"`
	Mode      string     `json:"mode"`
	Sequence  string     `json:"sequence"`
	Table     string     `json:"table"`
	Seed      int64      `json:"seed"`
	Successes int        `json:"successes"`
	Records   []RecordV1 `json:"records"`
}
