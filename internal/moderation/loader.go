package moderation

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// LoadForbidden reads the forbidden-term list from an xlsx workbook. Terms
// live in column A of the first sheet, one per row.
func LoadForbidden(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open forbidden-word list: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read forbidden-word list: %w", err)
	}

	terms := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		terms = append(terms, row[0])
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("forbidden-word list %s is empty", path)
	}

	slog.Info("forbidden-word list loaded", "path", path, "terms", len(terms))
	return terms, nil
}

// LoadAllowed reads the allow-list from a YAML file holding a plain sequence
// of terms. A missing path yields an empty allow-list, which only makes
// moderation stricter.
func LoadAllowed(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open allow-list: %w", err)
	}

	var terms []string
	if err := yaml.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("parse allow-list: %w", err)
	}

	slog.Info("allow-list loaded", "path", path, "terms", len(terms))
	return terms, nil
}

// LoadModerator builds a Moderator from the configured list files. Any load
// failure is returned rather than degraded: the caller must treat it as
// fatal so moderation fails closed.
func LoadModerator(forbiddenPath, allowedPath string) (*Moderator, error) {
	forbidden, err := LoadForbidden(forbiddenPath)
	if err != nil {
		return nil, err
	}
	allowed, err := LoadAllowed(allowedPath)
	if err != nil {
		return nil, err
	}
	return New(forbidden, allowed), nil
}
