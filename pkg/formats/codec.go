package formats

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matforge/matforge/pkg/errors"
	jsonpool "github.com/matforge/matforge/pkg/json"
	"github.com/matforge/matforge/pkg/material"
)

// EncodeJSON writes a material as a JSON document.
func EncodeJSON(w io.Writer, m *material.Material, pretty bool) error {
	doc := FromMaterial(m)
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = jsonpool.MarshalIndent(doc, "", "  ")
	} else {
		data, err = jsonpool.Marshal(doc)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFormat, "encode material as JSON")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrorTypeIO, "write JSON document")
	}
	return nil
}

// DecodeJSON reads a JSON document and rebuilds the material it describes.
func DecodeJSON(r io.Reader) (*material.Material, error) {
	var doc Document
	if err := jsonpool.UnmarshalFromReader(r, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFormat, "parse JSON document")
	}
	return doc.Material()
}

// EncodeYAML writes a material as a YAML document.
func EncodeYAML(w io.Writer, m *material.Material) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMaterial(m)); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFormat, "encode material as YAML")
	}
	return enc.Close()
}

// DecodeYAML reads a YAML document and rebuilds the material it describes.
func DecodeYAML(r io.Reader) (*material.Material, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFormat, "parse YAML document")
	}
	return doc.Material()
}
