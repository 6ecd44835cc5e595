package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Block holds the raw override values for one logger (or the defaults
// section). Fields are pointers so an absent key can be told apart from an
// explicit zero value; absent keys fall through during Merge. Unknown keys in
// the document are ignored for forward compatibility.
type Block struct {
	File        *string       `yaml:"file"`
	Level       *string       `yaml:"level"`
	Rotation    *string       `yaml:"rotation"`
	Retention   *string       `yaml:"retention"`
	Compression *string       `yaml:"compression"`
	Format      *string       `yaml:"format"`
	Console     *ConsoleBlock `yaml:"console"`
}

// ConsoleBlock holds the raw console sink overrides.
type ConsoleBlock struct {
	Enabled  *bool   `yaml:"enabled"`
	Level    *string `yaml:"level"`
	Colorize *bool   `yaml:"colorize"`
}

// Document is the parsed shape of logging.yaml. Any of the sections may be
// absent; an empty document is legal and resolves to built-in values.
type Document struct {
	Defaults *Block            `yaml:"defaults"`
	Logger   *Block            `yaml:"logger"`
	Loggers  map[string]*Block `yaml:"loggers"`
}

// Parse decodes a configuration document. Malformed YAML is reported as a
// ParseError; the path is attached by callers that know it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &doc, nil
}

// LoadDocument reads and parses the configuration file at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// override returns the block that applies to the named logger. A named entry
// under loggers always wins; the top-level logger block only feeds the
// default logger name.
func (d *Document) override(name string) *Block {
	if d == nil {
		return nil
	}
	if block, ok := d.Loggers[name]; ok && block != nil {
		return block
	}
	if name == DefaultName {
		return d.Logger
	}
	return nil
}
