package pricing

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadSheet reads pricing tables from a YAML pricing sheet, used for offline quotes
func LoadSheet(path string) (Tables, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return Tables{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read pricing sheet: %w", err)
	}

	tables, err := ParseSheet(data)
	if err != nil {
		return Tables{}, err
	}

	log.Printf("✅ LoadSheet: loaded %d prep rules, %d box, %d pallet forwarding, %d pallet existing prices from %s",
		len(tables.PrepRules), len(tables.BoxForwarding), len(tables.PalletForwarding), len(tables.PalletExistingInventory), path)
	return tables, nil
}

// ParseSheet decodes and validates a YAML pricing sheet
func ParseSheet(data []byte) (Tables, error) {
	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("failed to parse pricing sheet: %w", err)
	}
	if err := ValidateRules(tables.PrepRules); err != nil {
		return Tables{}, fmt.Errorf("invalid pricing sheet: %w", err)
	}
	return tables, nil
}
