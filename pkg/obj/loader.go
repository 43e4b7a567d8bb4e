package obj

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/manvscode/obj2js/pkg/encoding"
)

// Options controls how an OBJ source is parsed.
type Options struct {
	// Verbose logs informational notices (implicit groups, skipped lines).
	Verbose bool
	// Strict rejects non-numeric values and zero face indices instead of
	// reading them as 0.
	Strict bool
	// SkipMalformed logs and skips malformed records instead of failing.
	SkipMalformed bool
	// ExactDirectives matches directive keywords exactly rather than by prefix.
	ExactDirectives bool
	// Encoding names the source text encoding. Empty means UTF-8.
	Encoding string
	// Logger receives parse diagnostics. Nil discards them.
	Logger *zap.Logger
}

// DefaultOptions returns lenient, quiet parse options.
func DefaultOptions() Options {
	return Options{}
}

// ParseFile loads an OBJ file from disk. The file is closed before returning.
func ParseFile(path string, opts Options) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	defer f.Close()

	m, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseBytes parses OBJ data held in memory.
func ParseBytes(data []byte, opts Options) (*Model, error) {
	return Parse(bytes.NewReader(data), opts)
}

// Parse reads an OBJ source to the end and returns the populated model.
// On error no model is returned.
func Parse(r io.Reader, opts Options) (*Model, error) {
	src, err := encoding.NewReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	p := newParser(opts)
	lines := NewLineReader(src)

	for {
		line, num, err := lines.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.model.Clear()
			return nil, fmt.Errorf("%w: after line %d: %w", ErrFileUnreadable, num, err)
		}

		if err := p.parseLine(line); err != nil {
			if opts.SkipMalformed && errors.Is(err, ErrMalformedRecord) {
				p.log.Warn("Skipping malformed line",
					zap.Int("line", num),
					zap.String("text", line),
					zap.Error(err))
				continue
			}
			p.model.Clear()
			return nil, fmt.Errorf("line %d: %w", num, err)
		}
	}

	p.log.Debug("OBJ parsed",
		zap.Int("lines", lines.Line()),
		zap.Int("vertices", p.model.VertexCount()),
		zap.Int("texcoords", p.model.TexCoordCount()),
		zap.Int("normals", p.model.NormalCount()),
		zap.Int("groups", p.model.GroupCount()),
		zap.Int("faces", p.model.FaceCount()))

	return p.model, nil
}

// parser holds the state of one parse session.
type parser struct {
	opts     Options
	log      *zap.Logger
	model    *Model
	classify func(string) Element

	// current is the index of the group receiving faces, -1 until the
	// first face or group directive.
	current int
}

func newParser(opts Options) *parser {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	classify := Classify
	if opts.ExactDirectives {
		classify = ClassifyExact
	}
	return &parser{
		opts:     opts,
		log:      log,
		model:    NewModel(),
		classify: classify,
		current:  -1,
	}
}

// notice logs an informational message in verbose mode.
func (p *parser) notice(msg string, fields ...zap.Field) {
	if p.opts.Verbose {
		p.log.Info(msg, fields...)
	}
}

func (p *parser) parseLine(line string) error {
	fields := Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args := fields[1:]

	switch p.classify(fields[0]) {
	case ElementVertex:
		var v [3]float32
		if err := p.parseFloats(ElementVertex, args, v[:]); err != nil {
			return err
		}
		p.model.vertices = append(p.model.vertices, Vertex{X: v[0], Y: v[1], Z: v[2]})
	case ElementTexCoord:
		var t [2]float32
		if err := p.parseFloats(ElementTexCoord, args, t[:]); err != nil {
			return err
		}
		p.model.texCoords = append(p.model.texCoords, TexCoord{U: t[0], V: t[1]})
	case ElementNormal:
		var n [3]float32
		if err := p.parseFloats(ElementNormal, args, n[:]); err != nil {
			return err
		}
		p.model.normals = append(p.model.normals, Normal{X: n[0], Y: n[1], Z: n[2]})
	case ElementFace:
		return p.parseFace(args)
	case ElementGroup:
		p.parseGroup(args)
	default:
		p.notice("Unknown element; skipping line",
			zap.String("text", line),
			zap.NamedError("reason", fmt.Errorf("%w: %q", ErrUnknownDirective, fields[0])))
	}
	return nil
}

// parseFloats fills out from the leading tokens of args. Extra tokens are
// ignored.
func (p *parser) parseFloats(kind Element, args []string, out []float32) error {
	if len(args) < len(out) {
		return fmt.Errorf("%w: %s needs %d values, got %d", ErrMalformedRecord, kind, len(out), len(args))
	}
	for i := range out {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			if p.opts.Strict {
				return fmt.Errorf("%w: %s value %q is not a number", ErrMalformedRecord, kind, args[i])
			}
			v = 0
		}
		out[i] = float32(v)
	}
	return nil
}

// parseIndex converts a one-based OBJ index to a zero-based one. Negative
// indices count back from the end of a list that currently holds count
// entries.
func (p *parser) parseIndex(tok string, count int) (int, error) {
	k, err := strconv.Atoi(tok)
	if err != nil {
		if p.opts.Strict {
			return 0, fmt.Errorf("%w: face index %q is not an integer", ErrMalformedRecord, tok)
		}
		k = 0
	}
	switch {
	case k > 0:
		return k - 1, nil
	case k < 0:
		return count + k, nil
	}
	if p.opts.Strict {
		return 0, fmt.Errorf("%w: face index 0", ErrMalformedRecord)
	}
	// Left invalid; reported when the face is resolved.
	return -1, nil
}

func (p *parser) parseFace(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: face has no vertices", ErrMalformedRecord)
	}

	face := Face{
		vertices:  make([]int, 0, len(args)),
		texCoords: make([]int, 0, len(args)),
		normals:   make([]int, 0, len(args)),
	}

	for _, field := range args {
		parts := SplitFaceVertex(field)
		if !parts[0].Present {
			return fmt.Errorf("%w: face field %q has no vertex index", ErrMalformedRecord, field)
		}

		vi, err := p.parseIndex(parts[0].Text, len(p.model.vertices))
		if err != nil {
			return err
		}
		face.vertices = append(face.vertices, vi)

		if parts[1].Present {
			ti, err := p.parseIndex(parts[1].Text, len(p.model.texCoords))
			if err != nil {
				return err
			}
			face.texCoords = append(face.texCoords, ti)
		}

		if parts[2].Present {
			ni, err := p.parseIndex(parts[2].Text, len(p.model.normals))
			if err != nil {
				return err
			}
			face.normals = append(face.normals, ni)
		}
	}

	if p.current < 0 {
		p.notice("No group defined yet; adding a default group")
		p.current = p.model.findOrAddGroup(DefaultGroupName)
	}

	g := &p.model.groups[p.current]
	g.faces = append(g.faces, face)
	return nil
}

// parseGroup switches the current group. The name "default" is reserved
// for the implicit group and never selects or creates a group here.
func (p *parser) parseGroup(args []string) {
	name := strings.Join(args, " ")
	if name == "" || name == DefaultGroupName {
		p.notice("Ignoring group directive", zap.String("group", name))
		return
	}

	before := p.model.GroupCount()
	p.current = p.model.findOrAddGroup(name)
	if p.model.GroupCount() > before {
		p.notice("Added group", zap.String("group", name))
	}
}
