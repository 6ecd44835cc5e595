package config

import "fmt"

// Validate structurally checks a parsed document. Empty documents and empty
// blocks are legal; set values must be interpretable (known levels, parsable
// rotation/retention windows, known formats).
func Validate(doc *Document) error {
	if doc == nil {
		return nil
	}
	if err := validateBlock("defaults", doc.Defaults); err != nil {
		return err
	}
	if err := validateBlock("logger", doc.Logger); err != nil {
		return err
	}
	for name, block := range doc.Loggers {
		if err := validateBlock("loggers."+name, block); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFile loads, parses, and validates the document at path.
func ValidateFile(path string) (*Document, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func validateBlock(section string, b *Block) error {
	if b == nil {
		return nil
	}
	if b.Level != nil {
		if _, err := ParseLevel(*b.Level); err != nil {
			return fmt.Errorf("%s: %w", section, err)
		}
	}
	if b.Rotation != nil {
		if _, err := ParseSize(*b.Rotation); err != nil {
			return fmt.Errorf("%s: %w", section, err)
		}
	}
	if b.Retention != nil {
		if _, err := ParseAge(*b.Retention); err != nil {
			return fmt.Errorf("%s: %w", section, err)
		}
	}
	if b.Format != nil {
		if _, err := ParseFormat(*b.Format); err != nil {
			return fmt.Errorf("%s: %w", section, err)
		}
	}
	if b.Console != nil && b.Console.Level != nil {
		if _, err := ParseLevel(*b.Console.Level); err != nil {
			return fmt.Errorf("%s.console: %w", section, err)
		}
	}
	return nil
}
