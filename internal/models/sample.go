package models

// RawSample is a single measurement produced by one benchmark run.
// Samples are immutable once recorded; everything downstream is derived
// from them.
type RawSample struct {
	SystemID  string    `json:"system_id"`
	Component Component `json:"component"`
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	RunIndex  int       `json:"run_index"`
}
