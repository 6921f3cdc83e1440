// Package export encodes whole snapshots for backup and import
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// JSONCodec writes indented camel-case JSON, the same shape the local store uses
type JSONCodec struct{}

// Ensure codecs implement ports.SnapshotCodec
var (
	_ ports.SnapshotCodec = JSONCodec{}
	_ ports.SnapshotCodec = YAMLCodec{}
)

// Encode writes data as JSON
func (JSONCodec) Encode(w io.Writer, data *domain.Aggregate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Decode reads a JSON snapshot
func (JSONCodec) Decode(r io.Reader) (*domain.Aggregate, error) {
	var data domain.Aggregate
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	data.Normalize()
	return &data, nil
}

// YAMLCodec writes YAML with the same keys as the JSON form. Values pass
// through JSON first so entity field names and time formats stay identical.
type YAMLCodec struct{}

// Encode writes data as YAML
func (YAMLCodec) Encode(w io.Writer, data *domain.Aggregate) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fmt.Errorf("failed to convert snapshot: %w", err)
	}
	resetStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML snapshot
func (YAMLCodec) Decode(r io.Reader) (*domain.Aggregate, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert snapshot: %w", err)
	}
	return JSONCodec{}.Decode(bytes.NewReader(raw))
}

// resetStyle drops the flow style inherited from the JSON source so the
// output is block YAML
func resetStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	for _, c := range n.Content {
		resetStyle(c)
	}
}

// ForFormat returns the codec named by format ("json" or "yaml")
func ForFormat(format string) (ports.SnapshotCodec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}

// ForPath picks a codec from the file extension, defaulting to JSON
func ForPath(path string) ports.SnapshotCodec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLCodec{}
	default:
		return JSONCodec{}
	}
}
