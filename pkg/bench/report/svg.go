package report

import (
	"fmt"
	"os"
	"text/template"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/fijjas/go-experiments/pkg/bench"
)

// SVGReporter renders every group as a horizontal bar chart in a single
// SVG file. Bar length is proportional to ns/op within the group and bar
// color runs blue (fastest) to red (slowest).
type SVGReporter struct {
	svgFileName string
	groups      []chartGroup
}

// NewSVGReporter creates a new SVG reporter.
func NewSVGReporter(svgFileName string) *SVGReporter {
	return &SVGReporter{svgFileName: svgFileName}
}

const maxRGB = 240

type chartBar struct {
	Label    string
	Value    string
	Width    float64
	Fill     string
	Y        int
	Baseline bool
}

type chartGroup struct {
	Name string
	Bars []chartBar
	Y    int
}

// Add records one group of results for rendering.
func (r *SVGReporter) Add(group string, results []bench.Result) error {
	if len(results) == 0 {
		return nil
	}

	minNs := results[0].NsPerOp
	maxNs := results[0].NsPerOp
	for _, res := range results {
		if res.NsPerOp < minNs {
			minNs = res.NsPerOp
		}
		if res.NsPerOp > maxNs {
			maxNs = res.NsPerOp
		}
	}

	g := chartGroup{Name: group}
	for i, res := range results {
		fraction := 1.0
		if maxNs > minNs {
			fraction = (res.NsPerOp - minNs) / (maxNs - minNs)
		}

		red := maxRGB * fraction
		blue := -maxRGB*fraction + maxRGB

		barColor, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		width := float64(barMaxWidth)
		if maxNs > 0 {
			width = barMaxWidth * res.NsPerOp / maxNs
		}
		if width < barMinWidth {
			width = barMinWidth
		}

		g.Bars = append(g.Bars, chartBar{
			Label:    res.Name,
			Value:    fmt.Sprintf("%.1f ns/op", res.NsPerOp),
			Width:    width,
			Fill:     barColor.ToHEX().String(),
			Y:        i * barPitch,
			Baseline: res.Baseline,
		})
	}

	r.groups = append(r.groups, g)

	return nil
}

// Finish writes the SVG file.
func (r *SVGReporter) Finish() error {
	file, err := os.Create(r.svgFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", r.svgFileName)
	}
	defer file.Close()

	offset := chartPadding
	for i := range r.groups {
		r.groups[i].Y = offset
		offset += groupHeaderHeight + len(r.groups[i].Bars)*barPitch + groupGap
	}

	tpl, err := template.New("svgTemplate").Parse(svgTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	data := struct {
		Width  int
		Height int
		Groups []chartGroup
	}{
		Width:  chartWidth,
		Height: offset + chartPadding,
		Groups: r.groups,
	}

	err = tpl.Execute(file, data)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

const (
	chartWidth        = 900
	chartPadding      = 20
	barMaxWidth       = 500
	barMinWidth       = 2
	barPitch          = 26
	groupHeaderHeight = 30
	groupGap          = 14
)

//nolint:lll //this is a template
const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" font-family="monospace" font-size="13">
	<rect width="100%" height="100%" fill="white"/>
	{{range $g := .Groups}}
	<g transform="translate(20,{{$g.Y}})">
		<text y="14" font-weight="bold">{{$g.Name}}</text>
		{{range $b := $g.Bars}}
		<g transform="translate(0,{{$b.Y}})">
			<text x="0" y="42" text-anchor="start">{{$b.Label}}{{if $b.Baseline}} *{{end}}</text>
			<rect x="200" y="30" width="{{printf "%.1f" $b.Width}}" height="16" fill="{{$b.Fill}}"/>
			<text x="{{printf "%.1f" $b.TextX}}" y="42">{{$b.Value}}</text>
		</g>
		{{end}}
	</g>
	{{end}}
</svg>
`

// TextX positions the value label just past the end of the bar.
func (b chartBar) TextX() float64 {
	return 200 + b.Width + 8
}

var _ Reporter = (*SVGReporter)(nil)
