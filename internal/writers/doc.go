// Package writers turns trial records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text lines, JSON, JSONL, plots).
//   - Core stays domain-only; pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
