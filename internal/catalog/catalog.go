// Package catalog loads the item records that the website embeds in its
// JavaScript data module. The module is parsed in process; no script engine
// is involved.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/romangod6/sitemap-builder/internal/models"
)

// Source yields the ordered item list, or fails with a *DataSourceError.
type Source interface {
	LoadItems() ([]models.Item, error)
}

// FileSource reads items from a .js module declaring Variable, or from a
// plain .json array.
type FileSource struct {
	Path     string
	Variable string
}

func NewFileSource(path, variable string) *FileSource {
	return &FileSource{Path: path, Variable: variable}
}

func (s *FileSource) LoadItems() ([]models.Item, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &DataSourceError{Path: s.Path, Err: err}
	}

	items, err := ParseItems(content, s.Variable, strings.EqualFold(filepath.Ext(s.Path), ".json"))
	if err != nil {
		return nil, &DataSourceError{Path: s.Path, Err: err}
	}
	return items, nil
}

// ParseItems decodes the item array from src. With plainJSON the whole input
// is the array; otherwise the array assigned to variable is located first.
func ParseItems(src []byte, variable string, plainJSON bool) ([]models.Item, error) {
	literal := src
	if !plainJSON {
		var err error
		if literal, err = extractArrayLiteral(src, variable); err != nil {
			return nil, err
		}
		literal = normalizeLiteral(literal)
	}

	var raw []map[string]interface{}
	if err := json5.Unmarshal(literal, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse item list: %w", err)
	}
	for i, record := range raw {
		if record == nil {
			return nil, fmt.Errorf("item %d is not an object", i)
		}
		if _, ok := record["name"].(string); !ok {
			return nil, fmt.Errorf("item %d: %w", i, errMissingName)
		}
	}

	// Re-encode as strict JSON so the model's json tags drive the decode.
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize items: %w", err)
	}
	items := make([]models.Item, 0, len(raw))
	if err := json.Unmarshal(normalized, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

var errMissingName = errors.New("missing string field \"name\"")

// StaticSource serves a fixed item list. Used by tests and by callers that
// already hold the data.
type StaticSource []models.Item

func (s StaticSource) LoadItems() ([]models.Item, error) {
	return append([]models.Item(nil), s...), nil
}
