package types

// Result is the cleaned form of one loaded dataset.
type Result struct {
	Name string
	Rows []Row
}

// Row pairs a loaded record with its cleaned value.
// Index is the record's position in the loaded sequence.
type Row struct {
	Index int
	Raw   string
	Clean string
}

// Changed reports whether cleaning altered the record.
func (r Row) Changed() bool { return r.Raw != r.Clean }

// Cleaned returns the cleaned values in row order.
func (r Result) Cleaned() []string {
	out := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		out = append(out, row.Clean)
	}
	return out
}
