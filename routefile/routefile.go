// Package routefile loads route tables from YAML files.
//
// A route file lists templates and the name of the handler serving each:
//
//	routes:
//	  - path: /projects
//	    handler: listProjects
//	  - path: /projects/{projectId:int}
//	    handler: showProject
//	    methods: [GET, HEAD]
//
// Handler names are resolved by the caller, so the same file can drive an
// HTTP router or any other tree.
package routefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a decoded route file.
type File struct {
	Routes []Entry `yaml:"routes"`
}

// Entry is one route of a route file.
type Entry struct {
	Path    string     `yaml:"path"`
	Handler string     `yaml:"handler"`
	Methods MethodList `yaml:"methods,omitempty"`
}

// MethodList accepts either a single method or a list of methods.
type MethodList []string

// UnmarshalYAML decodes a method list from a scalar or a sequence.
func (m *MethodList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*m = MethodList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*m = list
		return nil
	default:
		return fmt.Errorf("routefile: line %d: methods must be a string or a list", node.Line)
	}
}

// Load decodes a route file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("routefile: decode: %w", err)
	}

	return &f, nil
}

// LoadFile reads and decodes the route file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}

	f, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return f, nil
}
