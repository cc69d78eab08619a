package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/tidy/pkg/tidy/filter"
	"github.com/komsit37/tidy/pkg/tidy/logging"
	"github.com/komsit37/tidy/pkg/tidy/pipeline"
	"github.com/komsit37/tidy/pkg/tidy/render"
	"github.com/komsit37/tidy/pkg/tidy/source"
)

const defaultPath = "input.txt"

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "tidy [path]",
		Short:        "Load records and strip surrounding whitespace",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most 1 path argument")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultPath
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), v, path, stdout)
		},
	}

	f := cmd.Flags()
	f.String("config", "", "YAML config file")
	f.String("source", "placeholder", "record source: "+strings.Join(source.Kinds, "|"))
	f.String("output", "none", "output format: "+strings.Join(render.Kinds, "|"))
	f.String("match", "", "keep cleaned records matching: a,b | glob* | /regex/ | substring")
	f.Bool("pretty", false, "indent JSON output")
	f.Bool("color", false, "colorize table output")
	f.Int("max-col-width", 0, "table column width (0 = from terminal)")
	f.String("log-level", "warn", "log level")
	f.String("dsn", "", "sqlite database path")
	f.String("table", "records", "sqlite table")
	f.String("column", "value", "sqlite column")

	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("TIDY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(ctx context.Context, v *viper.Viper, path string, stdout io.Writer) error {
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfg, err)
		}
	}

	if err := logging.ParseLevel(v.GetString("log-level")); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log := logging.New("tidy")

	src, err := source.New(v.GetString("source"), source.Options{
		Notice: stdout,
		DSN:    v.GetString("dsn"),
		Table:  v.GetString("table"),
		Column: v.GetString("column"),
	})
	if err != nil {
		return err
	}
	renderer, err := render.New(v.GetString("output"))
	if err != nil {
		return err
	}
	filt, err := filter.Parse(v.GetString("match"))
	if err != nil {
		return err
	}

	maxWidth := v.GetInt("max-col-width")
	if maxWidth <= 0 {
		maxWidth = columnWidth(detectTerminalWidth())
	}

	log.WithField("source", v.GetString("source")).WithField("path", path).Debug("run")
	runner := &pipeline.Runner{Source: src, Renderer: renderer, Writer: stdout, Log: log}
	_, err = runner.Execute(ctx, path, pipeline.ExecuteOptions{
		Filter:      filt,
		Color:       v.GetBool("color"),
		PrettyJSON:  v.GetBool("pretty"),
		MaxColWidth: maxWidth,
	})
	return err
}

// columnWidth splits the terminal between the RAW and CLEAN columns.
// Zero leaves the renderer default in place.
func columnWidth(termWidth int) int {
	if termWidth <= 0 {
		return 0
	}
	w := (termWidth - 12) / 2
	if w < 10 {
		w = 10
	}
	return w
}
