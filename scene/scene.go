// Package scene loads curve scenes from YAML, JSON, and TOML documents.
//
// Documents use the field names of the authoring tool's Bézier point API:
//
//	curves:
//	  - name: BezierCurve
//	    splines:
//	      - points:
//	          - co: [0, 0, 0]
//	            handle_left: [-1, 0, 0]
//	            handle_right: [1, 0, 0]
//
// Coordinates are in the authoring tool's space; remapping happens on export.
package scene

import (
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/bezexport"
)

type Format int

const (
	YAML Format = iota + 1
	JSON
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format with the given name, as returned by
// [Format.String]. "yml" is accepted as an alias for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("unknown scene format %q", name)
	}
}

// FormatFromPath picks the format based on the file extension. Unknown
// extensions, including none, yield YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".toml":
		return TOML
	default:
		return YAML
	}
}

// Document is a decoded scene document. It implements [bezexport.Scene].
type Document struct {
	set bezexport.CurveSet
}

// file mirrors the on-disk layout.
type file struct {
	Curves []curveDoc `yaml:"curves" toml:"curves"`
}

type curveDoc struct {
	Name    string      `yaml:"name" toml:"name"`
	Splines []splineDoc `yaml:"splines" toml:"splines"`
}

type splineDoc struct {
	Points []pointDoc `yaml:"points" toml:"points"`
}

type pointDoc struct {
	Co          []float64 `yaml:"co" toml:"co"`
	HandleLeft  []float64 `yaml:"handle_left" toml:"handle_left"`
	HandleRight []float64 `yaml:"handle_right" toml:"handle_right"`
}

var _ bezexport.Scene = (*Document)(nil)

// Curves returns the document's curves in document order.
func (doc *Document) Curves() iter.Seq[bezexport.Curve] {
	return doc.set.Curves()
}

// CurveSet returns the document's curves. The result shares memory with doc.
func (doc *Document) CurveSet() bezexport.CurveSet {
	return doc.set
}

// Decode reads a document in format f from r.
//
// Each coordinate must have exactly three components. Splines without points
// are accepted here and left for the exporter to reject.
func Decode(r io.Reader, f Format) (*Document, error) {
	var raw file
	switch f {
	case YAML, JSON:
		// JSON documents are valid YAML.
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding %s scene: %w", f, err)
		}
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding %s scene: %w", f, err)
		}
	default:
		return nil, fmt.Errorf("unsupported scene format %s", f)
	}
	set, err := raw.curveSet()
	if err != nil {
		return nil, err
	}
	return &Document{set: set}, nil
}

// Load reads the document at path, choosing the format with
// [FormatFromPath]. The path "-" reads a YAML document from standard input.
func Load(path string) (*Document, error) {
	if path == "-" {
		return Decode(os.Stdin, YAML)
	}
	return LoadFormat(path, FormatFromPath(path))
}

// LoadFormat is like [Load] but uses the given format regardless of the
// file's extension.
func LoadFormat(path string, f Format) (*Document, error) {
	if path == "-" {
		return Decode(os.Stdin, f)
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	doc, err := Decode(fd, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// PointError describes a malformed coordinate in a document.
type PointError struct {
	Curve  int
	Spline int
	Point  int
	Field  string
	Len    int
}

func (err *PointError) Error() string {
	return fmt.Sprintf("curve %d, spline %d, point %d: %s has %d components, want 3",
		err.Curve, err.Spline, err.Point, err.Field, err.Len)
}

func (raw *file) curveSet() (bezexport.CurveSet, error) {
	set := make(bezexport.CurveSet, 0, len(raw.Curves))
	for ci, cd := range raw.Curves {
		c := bezexport.Curve{
			Name:    cd.Name,
			Splines: make([]bezexport.Spline, 0, len(cd.Splines)),
		}
		for si, sd := range cd.Splines {
			sp := make(bezexport.Spline, 0, len(sd.Points))
			for pi, pd := range sd.Points {
				var cp bezexport.ControlPoint
				fields := []struct {
					name string
					src  []float64
					dst  *bezexport.Point3
				}{
					{"co", pd.Co, &cp.Anchor},
					{"handle_left", pd.HandleLeft, &cp.LeftHandle},
					{"handle_right", pd.HandleRight, &cp.RightHandle},
				}
				for _, f := range fields {
					if len(f.src) != 3 {
						return nil, &PointError{Curve: ci, Spline: si, Point: pi, Field: f.name, Len: len(f.src)}
					}
					*f.dst = bezexport.Pt3(f.src[0], f.src[1], f.src[2])
				}
				sp = append(sp, cp)
			}
			c.Splines = append(c.Splines, sp)
		}
		set = append(set, c)
	}
	return set, nil
}
