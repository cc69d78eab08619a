package render

import (
	"encoding/json"
	"io"

	"github.com/komsit37/tidy/pkg/tidy/types"
)

// jsonModel is the output shape for JSONRenderer.
type jsonModel struct {
	Name    string       `json:"name"`
	Count   int          `json:"count"`
	Records []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Index int    `json:"index"`
	Raw   string `json:"raw"`
	Clean string `json:"clean"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, res types.Result, opts RenderOptions) error {
	records := make([]jsonRecord, 0, len(res.Rows))
	for _, row := range res.Rows {
		records = append(records, jsonRecord{Index: row.Index, Raw: row.Raw, Clean: row.Clean})
	}
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(jsonModel{Name: res.Name, Count: len(records), Records: records})
}
