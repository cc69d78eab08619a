package render

import (
	"bufio"
	"io"

	"github.com/komsit37/tidy/pkg/tidy/types"
)

// LinesRenderer prints one cleaned record per line.
type LinesRenderer struct{}

func NewLinesRenderer() *LinesRenderer { return &LinesRenderer{} }

func (r *LinesRenderer) Render(w io.Writer, res types.Result, _ RenderOptions) error {
	bw := bufio.NewWriter(w)
	for _, row := range res.Rows {
		if _, err := bw.WriteString(row.Clean); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
