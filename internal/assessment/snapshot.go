// Package assessment reads assessment snapshots at the engine boundary.
//
// A snapshot is a mapping of skill id to level, stored as JSON or YAML:
//
//	d1-sa1-sg1-s1: 2
//	d2-sa1-sg2-s1: null
//
// Levels must be integers 0..3 or null; null records an explicit Not Present.
// Snapshots are checked against an embedded JSON Schema before any level
// reaches the ceiling engine.
package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/taxonomy"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Stdin is the path that makes Load read from its reader argument.
const Stdin = "-"

// Format is a snapshot encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: unsupported file extension %q (want .json, .yaml or .yml)", ErrInvalidSnapshot, filepath.Ext(path))
	}
}

// Load reads a snapshot file. The path "-" reads stdin as YAML, which also
// accepts JSON documents.
func Load(path string, stdin io.Reader) (ceiling.Assessments, error) {
	var (
		data   []byte
		format = FormatYAML
		err    error
	)
	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		if format, err = FormatFromPath(path); err != nil {
			return nil, &SnapshotError{Path: path, Err: err}
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &SnapshotError{Path: path, Err: err}
	}

	a, err := Decode(data, format)
	if err != nil {
		return nil, &SnapshotError{Path: path, Err: err}
	}
	return a, nil
}

// Decode parses and validates a snapshot document.
func Decode(data []byte, format Format) (ceiling.Assessments, error) {
	var (
		doc any
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = jsonschema.UnmarshalJSON(bytes.NewReader(data))
	case FormatYAML:
		doc, err = yamlDocument(data)
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidSnapshot, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return toAssessments(doc.(map[string]any))
}

// yamlDocument decodes YAML and re-encodes it as a JSON document so both
// formats share one schema check. An empty document is an empty snapshot.
func yamlDocument(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if v == nil {
		v = map[string]any{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("snapshot keys must be strings: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}

func toAssessments(doc map[string]any) (ceiling.Assessments, error) {
	a := make(ceiling.Assessments, len(doc))
	for id, v := range doc {
		switch n := v.(type) {
		case nil:
			a[id] = ceiling.NotPresent
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, id, err)
			}
			a[id] = ceiling.Level(f)
		default:
			return nil, fmt.Errorf("%w: %s: unexpected value %v", ErrInvalidSnapshot, id, v)
		}
	}
	return a, nil
}

// Resolve checks snapshot ids against a taxonomy. Unknown ids are dropped
// and returned sorted, or rejected with ErrUnknownSkill when strict is set.
// The input snapshot is never modified.
func Resolve(a ceiling.Assessments, tax *taxonomy.Taxonomy, strict bool) (ceiling.Assessments, []string, error) {
	known := make(ceiling.Assessments, len(a))
	var unknown []string
	for id, level := range a {
		if !level.Valid() {
			return nil, nil, fmt.Errorf("%w: %s: level %d outside 0..3", ErrInvalidSnapshot, id, level)
		}
		if !tax.HasSkill(id) {
			unknown = append(unknown, id)
			continue
		}
		known[id] = level
	}
	sort.Strings(unknown)

	if strict && len(unknown) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownSkill, strings.Join(unknown, ", "))
	}
	return known, unknown, nil
}
