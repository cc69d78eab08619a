package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/komsit37/tidy/pkg/tidy/filter"
	"github.com/komsit37/tidy/pkg/tidy/processor"
	"github.com/komsit37/tidy/pkg/tidy/render"
	"github.com/komsit37/tidy/pkg/tidy/source"
	"github.com/komsit37/tidy/pkg/tidy/types"
)

type Runner struct {
	Source   source.Source
	Renderer render.Renderer
	Writer   io.Writer
	Log      *logrus.Entry
}

type ExecuteOptions struct {
	Filter      filter.Filter
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}

// Execute loads records for spec, cleans them and renders the kept rows.
func (r *Runner) Execute(ctx context.Context, spec any, opts ExecuteOptions) (types.Result, error) {
	log := r.Log
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = logrus.NewEntry(l)
	}

	data, err := r.Source.Load(ctx, spec)
	if err != nil {
		return types.Result{}, fmt.Errorf("load: %w", err)
	}
	log.WithField("records", len(data)).Debug("loaded")

	p := processor.New(data)
	cleaned := p.Clean()
	log.WithField("records", len(cleaned)).Debug("cleaned")

	res := types.Result{Name: resultName(spec), Rows: make([]types.Row, 0, len(cleaned))}
	for _, i := range filter.Keep(opts.Filter, cleaned) {
		res.Rows = append(res.Rows, types.Row{Index: i, Raw: data[i], Clean: cleaned[i]})
	}
	if dropped := len(cleaned) - len(res.Rows); dropped > 0 {
		log.WithField("dropped", dropped).Debug("filtered")
	}

	renderer := r.Renderer
	if renderer == nil {
		renderer = render.NewNoneRenderer()
	}
	w := r.Writer
	if w == nil {
		w = io.Discard
	}
	if err := renderer.Render(w, res, render.RenderOptions{
		Color:       opts.Color,
		PrettyJSON:  opts.PrettyJSON,
		MaxColWidth: opts.MaxColWidth,
	}); err != nil {
		return res, fmt.Errorf("render: %w", err)
	}
	return res, nil
}

// resultName derives a display name from a filepath spec.
func resultName(spec any) string {
	path, ok := spec.(string)
	if !ok || strings.TrimSpace(path) == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
