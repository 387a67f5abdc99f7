package heatmap

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"popdiff/api/models/constants"
	palettes "popdiff/api/models/constants/palette"
	"popdiff/api/services/fst"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const paletteSize = 255

type Options struct {
	Title   string
	Palette constants.Palette
	Width   vg.Length
	Height  vg.Length
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 8 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 6 * vg.Inch
	}
	if o.Palette == "" {
		o.Palette = palettes.Coolwarm
	}
	return o
}

// FileName is the image name used for a gene's count-based heatmap.
func FileName(gene string) string {
	clean := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, gene)
	return fmt.Sprintf("heatmap_%s.png", clean)
}

// Render draws m as an annotated heatmap and writes it to w as PNG.
func Render(w io.Writer, m *fst.Matrix, opts Options) error {
	if m == nil || m.Len() == 0 {
		return fmt.Errorf("nothing to render: empty fst matrix")
	}
	opts = opts.withDefaults()

	pl, err := buildPlot(m, opts)
	if err != nil {
		return err
	}

	// each render draws on its own canvas; nothing is shared between calls
	img := vgimg.New(opts.Width, opts.Height)
	pl.Draw(draw.New(img))

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encoding heatmap png: %w", err)
	}
	return nil
}

// SaveFile renders into dir/name, creating dir when missing, and returns
// name. A partially written file is removed on failure.
func SaveFile(dir string, name string, m *fst.Matrix, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating heatmap directory: %w", err)
	}

	savePath := filepath.Join(dir, name)
	f, err := os.Create(savePath)
	if err != nil {
		return "", err
	}

	renderErr := Render(f, m, opts)
	closeErr := f.Close()
	if renderErr != nil || closeErr != nil {
		_ = os.Remove(savePath)
		if renderErr != nil {
			return "", renderErr
		}
		return "", closeErr
	}

	return name, nil
}

// EncodeBase64 renders in memory and returns the standard base64 PNG,
// ready for a data: URI.
func EncodeBase64(m *fst.Matrix, opts Options) (string, error) {
	var imgBuf bytes.Buffer
	if err := Render(&imgBuf, m, opts); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(imgBuf.Bytes()), nil
}

func buildPlot(m *fst.Matrix, opts Options) (*plot.Plot, error) {
	g := newGrid(m)

	pl := plot.New()
	pl.Title.Text = opts.Title
	pl.X.Tick.Label.Font.Size = vg.Points(9)
	pl.Y.Tick.Label.Font.Size = vg.Points(9)

	hm := plotter.NewHeatMap(g, colorsFor(opts.Palette))
	hm.Min, hm.Max = g.Min(), g.Max()
	hm.NaN = color.Transparent
	pl.Add(hm)

	labels, err := cellLabels(g)
	if err != nil {
		return nil, err
	}
	if labels != nil {
		pl.Add(labels)
	}

	// row 0 is drawn at the top, as in a table
	yNames := make([]string, g.n)
	for i, pop := range m.Populations {
		yNames[g.n-1-i] = pop
	}
	pl.NominalX(m.Populations...)
	pl.NominalY(yNames...)
	if g.n > 6 {
		pl.X.Tick.Label.Rotation = math.Pi / 4
		pl.X.Tick.Label.XAlign = text.XRight
	}

	return pl, nil
}

func colorsFor(name constants.Palette) palette.Palette {
	var cm palette.ColorMap
	switch name {
	case palettes.Viridis:
		cm = moreland.Kindlmann()
	default:
		cm = moreland.SmoothBlueRed()
	}
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(paletteSize)
}

func cellLabels(g *grid) (*plotter.Labels, error) {
	var (
		xys    plotter.XYs
		values []string
	)
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			v := g.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: g.X(c), Y: g.Y(r)})
			values = append(values, strconv.FormatFloat(v, 'f', 3, 64))
		}
	}
	if len(xys) == 0 {
		return nil, nil
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: values})
	if err != nil {
		return nil, fmt.Errorf("annotating heatmap: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(8)
	}

	return labels, nil
}
