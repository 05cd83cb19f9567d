package schema

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/nodegen/errors"
)

// yamlField mirrors one field entry of the schema document.
type yamlField struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Kind string `yaml:"kind"`
}

// yamlNode mirrors one node entry of the schema document.
type yamlNode struct {
	Name    string      `yaml:"name"`
	Fields  []yamlField `yaml:"fields"`
	Comment string      `yaml:"comment"`
}

// yamlDocument mirrors the top level of the schema document.
type yamlDocument struct {
	Nodes []yamlNode `yaml:"nodes"`
}

// Load reads and validates a schema document from r.
func Load(r io.Reader) (*Schema, error) {
	var doc yamlDocument

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode schema document")
	}

	schema := &Schema{Nodes: make([]Node, 0, len(doc.Nodes))}
	for _, yn := range doc.Nodes {
		node := Node{
			Name:    yn.Name,
			Fields:  make([]Field, 0, len(yn.Fields)),
			Comment: yn.Comment,
		}
		for _, yf := range yn.Fields {
			kind, err := ParseFieldKind(yf.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "node %s: field %s", yn.Name, yf.Name)
			}
			node.Fields = append(node.Fields, Field{
				Name: yf.Name,
				Type: kind,
				Kind: yf.Kind,
			})
		}
		schema.Nodes = append(schema.Nodes, node)
	}

	if err := schema.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid schema")
	}

	return schema, nil
}

// LoadFile reads and validates a schema document from path.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open schema file %s", path)
	}
	defer f.Close()

	schema, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load schema from %s", path)
	}
	return schema, nil
}
