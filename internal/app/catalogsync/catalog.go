// Package catalogsync loads the gift catalog from a YAML file and upserts it
// into the database. Entries are matched by code, so re-running a sync with
// the same file is a no-op apart from updated_at.
package catalogsync

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

// Item is a single catalog entry as written in the YAML file.
type Item struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Price    int64  `yaml:"price"`
	ModelURL string `yaml:"modelUrl"`
}

// File is the top-level YAML document.
type File struct {
	Gifts []Item `yaml:"gifts"`
}

// LoadFile reads and validates a catalog file from disk.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalogsync: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a catalog document and validates every item.
// Unknown keys are rejected so that typos in the file do not silently drop data.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalogsync: empty catalog file")
		}
		return nil, fmt.Errorf("catalogsync: decode: %w", err)
	}

	for i := range file.Gifts {
		file.Gifts[i].Code = strings.TrimSpace(file.Gifts[i].Code)
		file.Gifts[i].Name = strings.TrimSpace(file.Gifts[i].Name)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks the catalog for missing fields, negative prices and
// duplicate codes.
func (f *File) Validate() error {
	var errs []domain.FieldError
	seen := make(map[string]int, len(f.Gifts))

	if len(f.Gifts) == 0 {
		errs = append(errs, domain.FieldError{Field: "gifts", Message: "at least one gift is required"})
	}

	for i, g := range f.Gifts {
		field := fmt.Sprintf("gifts[%d]", i)
		if g.Code == "" {
			errs = append(errs, domain.FieldError{Field: field + ".code", Message: "required"})
		} else if prev, dup := seen[g.Code]; dup {
			errs = append(errs, domain.FieldError{
				Field:   field + ".code",
				Message: fmt.Sprintf("duplicate of gifts[%d]", prev),
			})
		} else {
			seen[g.Code] = i
		}
		if g.Name == "" {
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: "required"})
		}
		if g.Price < 0 {
			errs = append(errs, domain.FieldError{Field: field + ".price", Message: "must be >= 0"})
		}
		if g.ModelURL == "" {
			errs = append(errs, domain.FieldError{Field: field + ".modelUrl", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
