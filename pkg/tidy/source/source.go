package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source loads an ordered sequence of records from a specification (e.g., filepath, DSN).
type Source interface {
	Load(ctx context.Context, spec any) ([]string, error)
}

// Notice is printed by Placeholder on every load.
const Notice = "Loading data..."

// ErrInvalidSpec is returned when a source receives a spec of the wrong type.
var ErrInvalidSpec = errors.New("invalid source spec")

// Placeholder announces a load and returns no records.
// The spec is ignored; nothing is read.
type Placeholder struct {
	Notice io.Writer
}

func NewPlaceholder(w io.Writer) Placeholder { return Placeholder{Notice: w} }

func (p Placeholder) Load(ctx context.Context, spec any) ([]string, error) { //nolint:revive
	w := p.Notice
	if w == nil {
		w = os.Stdout
	}
	if _, err := fmt.Fprintln(w, Notice); err != nil {
		return nil, fmt.Errorf("write notice: %w", err)
	}
	return []string{}, nil
}

// LoadData runs a stdout Placeholder for path. It always returns an empty sequence.
func LoadData(path string) []string {
	data, err := Placeholder{}.Load(context.Background(), path)
	if err != nil {
		return []string{}
	}
	return data
}

// Options configures the sources built by New.
type Options struct {
	Notice io.Writer
	Driver string
	DSN    string
	Table  string
	Column string
}

// Kinds lists the source names accepted by New.
var Kinds = []string{"placeholder", "text", "yaml", "sqlite"}

// New builds a source by kind name. An empty kind selects the placeholder.
func New(kind string, opts Options) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "placeholder":
		return NewPlaceholder(opts.Notice), nil
	case "text":
		return TextSource{}, nil
	case "yaml":
		return YAMLSource{}, nil
	case "sqlite":
		driver := opts.Driver
		if driver == "" {
			driver = "sqlite"
		}
		return &DBSource{Driver: driver, DSN: opts.DSN, Table: opts.Table, Column: opts.Column}, nil
	default:
		return nil, &UnknownKindError{Kind: kind, Available: Kinds}
	}
}

// UnknownKindError reports an unknown source name.
type UnknownKindError struct {
	Kind      string
	Available []string
}

func (e *UnknownKindError) Error() string {
	return "unknown source: " + e.Kind + "; available: " + strings.Join(e.Available, ", ")
}

func pathSpec(kind string, spec any) (string, error) {
	path, ok := spec.(string)
	if !ok || strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%s source expects filepath string spec: %w", kind, ErrInvalidSpec)
	}
	return path, nil
}
