package export

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"caveconv/top/survey"
	"github.com/pkg/errors"
)

//go:embed templates/survex.svx.tmpl
var defaultSurvexTemplate string

var templateFuncs = template.FuncMap{
	"metres": func(value float64) string {
		return fmt.Sprintf("%.3f", value)
	},
	"millimetres": func(value int64) string {
		return fmt.Sprintf("%.3f", float64(value)/1000.0)
	},
	"angle": func(value float64) string {
		return fmt.Sprintf("%.2f", value)
	},
	// comment keeps a comment on its Survex line
	"comment": func(value string) string {
		return strings.Join(strings.Fields(value), " ")
	},
	"deref": func(value *string) string {
		if value == nil {
			return ""
		}
		return *value
	},
}

func loadSurvexTemplate(path string) (*template.Template, error) {
	text := defaultSurvexTemplate
	if path != "" {
		bs, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "loadSurvexTemplate error: read %s", path)
		}
		text = string(bs)
	}
	tmpl, err := template.New("survex").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "loadSurvexTemplate error: parse")
	}
	return tmpl, nil
}

// Survex writes the graph as a Survex data file for the named cave.
func Survex(w io.Writer, graph *survey.Graph, name string, opts Options) error {
	tmpl, err := loadSurvexTemplate(opts.Template)
	if err != nil {
		return err
	}

	data := survexData{
		Name:         SurvexName(name),
		Summary:      graph.Summary(),
		Trips:        graph.Trips(),
		GroupedShots: graph.GroupedShots(),
		References:   graph.References(),
	}
	if len(data.Trips) > 0 {
		firstTrip := data.Trips[0]
		data.FirstTrip = &firstTrip
	}
	if opts.IncludeSplays {
		data.Splays = graph.Splays()
	}

	if err := tmpl.Execute(w, data); err != nil {
		return errors.Wrap(err, "export.Survex error")
	}
	return nil
}

// SurvexName turns a display name into a Survex survey name.
func SurvexName(name string) string {
	name = strings.Map(
		func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
				return r
			default:
				return '_'
			}
		},
		strings.TrimSpace(name),
	)
	if name == "" {
		return "cave"
	}
	return name
}
