// Package jsexport writes an OBJ model as a JavaScript object literal that
// maps each group name to a flat array of interleaved vertex attributes.
package jsexport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/manvscode/obj2js/pkg/obj"
)

// ErrInvalidVariableName is returned when no usable variable name is given.
var ErrInvalidVariableName = errors.New("invalid JavaScript variable name")

// Options controls the generated literal.
type Options struct {
	VariableName     string
	ExcludeTexCoords bool
	ExcludeNormals   bool
	Precision        int // Digits after the decimal point
	Width            int // Minimum column width
}

// DefaultOptions returns the standard column layout.
func DefaultOptions() Options {
	return Options{
		Precision: 10,
		Width:     16,
	}
}

// VariableName derives a variable name from an input path by dropping the
// directory and the last extension.
func VariableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Attributes returns the optional attributes that will be emitted for m.
func (o Options) Attributes(m *obj.Model) obj.Attributes {
	attrs := m.Attributes()
	if o.ExcludeTexCoords {
		attrs &^= obj.AttrTexCoord
	}
	if o.ExcludeNormals {
		attrs &^= obj.AttrNormal
	}
	return attrs
}

const literalTemplate = `/* var vertex = {
{{- range .Attributes}}
 *   {{.}},
{{- end}}
 * };
 */
var {{.Name}} = {
{{- range .Groups}}
	{{.Name}}: [
		//{{$.Header}}
		//{{$.Rule}}
{{- range .Rows}}
		  {{.Text}}{{.Sep}}
{{- end}}
	]{{.Sep}}
{{- end}}
};
`

var literal = template.Must(template.New("literal").Parse(literalTemplate))

type document struct {
	Name       string
	Attributes []string
	Header     string
	Rule       string
	Groups     []groupBlock
}

type groupBlock struct {
	Name string
	Rows []row
	Sep  string
}

type row struct {
	Text string
	Sep  string
}

type column struct {
	attr  string
	label string
}

// Write renders m to w. Every face index is resolved before anything is
// written, so an index error leaves w untouched.
func Write(w io.Writer, m *obj.Model, opts Options) error {
	doc, err := build(m, opts)
	if err != nil {
		return err
	}
	return literal.Execute(w, doc)
}

// WriteFile renders m to the file at path.
func WriteFile(path string, m *obj.Model, opts Options) error {
	doc, err := build(m, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := literal.Execute(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	return f.Close()
}

func build(m *obj.Model, opts Options) (*document, error) {
	if strings.TrimSpace(opts.VariableName) == "" {
		return nil, ErrInvalidVariableName
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.Precision < 0 {
		opts.Precision = DefaultOptions().Precision
	}

	attrs := opts.Attributes(m)
	cols := []column{{"x", "position-X"}, {"y", "position-Y"}, {"z", "position-Z"}}
	if attrs.Has(obj.AttrTexCoord) {
		cols = append(cols, column{"u", "texture-U"}, column{"v", "texture-V"})
	}
	if attrs.Has(obj.AttrNormal) {
		cols = append(cols, column{"nx", "normal-X"}, column{"ny", "normal-Y"}, column{"nz", "normal-Z"})
	}

	doc := &document{Name: opts.VariableName}
	labels := make([]string, len(cols))
	for i, c := range cols {
		doc.Attributes = append(doc.Attributes, c.attr)
		labels[i] = fmt.Sprintf("%*s", opts.Width, c.label)
	}
	doc.Header = strings.Join(labels, ",")
	doc.Rule = strings.Repeat("-", len(cols)*(opts.Width+1))

	values := make([]float32, 0, len(cols))
	for gi := 0; gi < m.GroupCount(); gi++ {
		g := m.GroupAt(gi)
		name, err := json.Marshal(g.Name())
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name(), err)
		}
		block := groupBlock{Name: string(name)}
		if gi < m.GroupCount()-1 {
			block.Sep = ","
		}

		for fi := 0; fi < g.FaceCount(); fi++ {
			face := g.FaceAt(fi)
			for vi := 0; vi < face.VertexIndexCount(); vi++ {
				c, err := m.Corner(face, vi, attrs)
				if err != nil {
					return nil, fmt.Errorf("group %q face %d: %w", g.Name(), fi, err)
				}

				values = append(values[:0], c.Position.X, c.Position.Y, c.Position.Z)
				if c.TexCoord != nil {
					values = append(values, c.TexCoord.U, c.TexCoord.V)
				}
				if c.Normal != nil {
					values = append(values, c.Normal.X, c.Normal.Y, c.Normal.Z)
				}
				block.Rows = append(block.Rows, row{Text: formatRow(values, opts)})
			}
		}

		for i := range block.Rows[:max(len(block.Rows)-1, 0)] {
			block.Rows[i].Sep = ","
		}
		doc.Groups = append(doc.Groups, block)
	}

	return doc, nil
}

func formatRow(values []float32, opts Options) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%+*.*f", opts.Width, opts.Precision, v)
	}
	return sb.String()
}
