package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/plotgraph"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindPath(t *testing.T) {
	tests := []struct {
		File string
		Kind plotgraph.ChartKind
		Want string
	}{
		{File: "out.svg", Kind: plotgraph.Pie, Want: "out-pie.svg"},
		{File: "dir/sales.svg", Kind: plotgraph.Bar, Want: "dir/sales-bar.svg"},
		{File: "", Kind: plotgraph.Line, Want: "out-line.svg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.Want, kindPath(tt.File, tt.Kind))
	}
}

func TestOptionsConfig(t *testing.T) {
	var (
		opts options
		set  = pflag.NewFlagSet("test", pflag.ContinueOnError)
	)
	opts.bind(set)
	require.NoError(t, set.Parse([]string{"-k", "bar", "-x", "month", "--palette", "category10", "-o", "sales.svg"}))

	cfg, err := opts.config(set)
	require.NoError(t, err)
	assert.Equal(t, "bar", cfg.Kind)
	assert.Equal(t, "month", cfg.X)
	assert.Equal(t, "", cfg.Y)
	assert.Equal(t, "category10", cfg.Style.Palette)
	assert.Equal(t, "sales.svg", cfg.Path)

	require.NoError(t, set.Parse([]string{"--palette", "unknown"}))
	_, err = opts.config(set)
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	pct := 50
	rows := []plotgraph.TableRow{
		{X: "jan", Y: "10", Color: "#6e40aa", Percent: &pct},
		{X: "feb", Y: "10", Color: "#aff05b", Percent: &pct},
	}
	var buf bytes.Buffer
	printTable(&buf, "month", "sales", rows)

	out := buf.String()
	assert.Contains(t, out, "month")
	assert.Contains(t, out, "Percentage")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "#aff05b")
}

func TestWriteFrames(t *testing.T) {
	data := plotgraph.Dataset{
		plotgraph.MakeRecord(
			plotgraph.Field{Name: "x", Value: plotgraph.Number(1)},
			plotgraph.Field{Name: "y", Value: plotgraph.Number(2)},
		),
	}
	d := plotgraph.NewDriver(plotgraph.DefaultStyle(), nil)
	pass := d.Render(plotgraph.Input{
		Dataset: data,
		Kind:    plotgraph.Scatter,
		XKey:    "x",
		YKey:    "y",
	})

	dir := t.TempDir()
	require.NoError(t, writeFrames(dir, 10, true, pass, plotgraph.Chart{}))

	files, err := filepath.Glob(filepath.Join(dir, "frame-*.svg"))
	require.NoError(t, err)
	assert.Len(t, files, 6)

	last, err := os.ReadFile(filepath.Join(dir, "frame-0005.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(last), "circle")
}
