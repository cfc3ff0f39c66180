package manifest

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ghodss/yaml"
	"github.com/mitchellh/hashstructure"
	"github.com/pkg/errors"
)

const (
	MaxDeclarations    = 256
	ManifestEnvVarName = "BOUNDCHECK_MANIFEST"

	BoundaryType = "boundary"
	FixedType    = "fixed"
	LinearType   = "linear"

	Int64ValueType   = "int64"
	Float64ValueType = "float64"
)

// Manifest lists constraint declarations to load into a Model. Each
// declaration names its kind in Type and carries the kind specific
// fields in Value.
type Manifest struct {
	ValueType   string        `json:"valueType,omitempty"`
	Constraints []Declaration `json:"constraints"`
}

type Declaration struct {
	Type  string                 `json:"type"`
	Value map[string]interface{} `json:"value"`
}

// NewFromEnv loads the manifest named by ManifestEnvVarName. It
// returns nil and no error if the variable is unset or empty.
func NewFromEnv() (*Manifest, error) {
	path, isSet := os.LookupEnv(ManifestEnvVarName)
	if !isSet || path == "" {
		return nil, nil
	}
	return NewFromFile(path)
}

// NewFromFile loads a YAML or JSON manifest from disk.
func NewFromFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading manifest %s", path)
	}
	return m, nil
}

// Parse decodes a YAML or JSON manifest. Numbers are kept as
// json.Number so that 64-bit integers survive decoding.
func Parse(data []byte) (*Manifest, error) {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		return nil, err
	}

	if m.ValueType == "" {
		m.ValueType = Int64ValueType
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) validate() error {
	switch m.ValueType {
	case Int64ValueType, Float64ValueType:
	default:
		return errors.Errorf("unsupported value type %q", m.ValueType)
	}
	if len(m.Constraints) > MaxDeclarations {
		return errors.Errorf("too many constraints declared (%d/%d)", len(m.Constraints), MaxDeclarations)
	}
	for i, d := range m.Constraints {
		switch d.Type {
		case BoundaryType, FixedType, LinearType:
		default:
			return errors.Errorf("constraint %d: unknown type %q", i, d.Type)
		}
		if len(d.Value) == 0 {
			return errors.Errorf("constraint %d: %s declaration has no value", i, d.Type)
		}
	}
	return nil
}

// Hash fingerprints the declarations, so that two runs can tell
// whether they validated against the same manifest.
func (m *Manifest) Hash() (uint64, error) {
	// Manifest itself implements hashstructure.Hashable, so hash its
	// fields through a type that does not.
	return hashstructure.Hash(fingerprint{
		ValueType:   m.ValueType,
		Constraints: m.Constraints,
	}, nil)
}

type fingerprint struct {
	ValueType   string
	Constraints []Declaration
}
