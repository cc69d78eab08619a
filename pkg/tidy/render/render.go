package render

import (
	"io"
	"strings"

	"github.com/komsit37/tidy/pkg/tidy/types"
)

// Renderer renders a cleaned result to an output writer.
type Renderer interface {
	Render(w io.Writer, res types.Result, opts RenderOptions) error
}

type RenderOptions struct {
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}

// Kinds lists the renderer names accepted by New.
var Kinds = []string{"none", "lines", "table", "json"}

// New builds a renderer by name. An empty name selects "none".
func New(kind string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "none":
		return NewNoneRenderer(), nil
	case "lines":
		return NewLinesRenderer(), nil
	case "table":
		return NewTableRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, &UnknownKindError{Kind: kind, Available: Kinds}
	}
}

// UnknownKindError reports an unknown output name.
type UnknownKindError struct {
	Kind      string
	Available []string
}

func (e *UnknownKindError) Error() string {
	return "unknown output: " + e.Kind + "; available: " + strings.Join(e.Available, ", ")
}

// NoneRenderer discards the result.
type NoneRenderer struct{}

func NewNoneRenderer() *NoneRenderer { return &NoneRenderer{} }

func (r *NoneRenderer) Render(io.Writer, types.Result, RenderOptions) error { return nil }
