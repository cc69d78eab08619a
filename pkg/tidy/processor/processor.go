// Package processor strips surrounding whitespace from string records.
package processor

import "strings"

// DataProcessor holds an ordered sequence of records.
type DataProcessor struct {
	data []string
}

// New copies data into a new processor; later changes to data are not seen.
func New(data []string) *DataProcessor {
	return &DataProcessor{data: append(make([]string, 0, len(data)), data...)}
}

// Data returns a copy of the held records.
func (p *DataProcessor) Data() []string {
	return append(make([]string, 0, len(p.data)), p.data...)
}

// Len returns the number of held records.
func (p *DataProcessor) Len() int { return len(p.data) }

// Clean returns the records with leading and trailing whitespace removed,
// in the same order. The held records are left untouched.
func (p *DataProcessor) Clean() []string {
	out := make([]string, len(p.data))
	for i, d := range p.data {
		out[i] = strings.TrimSpace(d)
	}
	return out
}

// Clean is shorthand for New(data).Clean().
func Clean(data []string) []string {
	return New(data).Clean()
}
