package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"

	"gopkg.in/yaml.v3"
)

// MappingFile reads and writes merchant mappings (merchant key → category) as YAML.
type MappingFile struct {
	Path   string
	logger logging.Logger
}

// NewMappingFile creates a MappingFile for path.
func NewMappingFile(path string, logger logging.Logger) *MappingFile {
	return &MappingFile{Path: path, logger: logging.OrDefault(logger)}
}

// FindMappingFile looks for filename in the standard locations.
func FindMappingFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "expense-tracker", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads the mappings. A missing file yields an empty map.
//
// Both a top-level "merchants:" map and a bare map are accepted.
func (f *MappingFile) Load() (map[string]string, error) {
	path, err := FindMappingFile(f.Path)
	if err != nil {
		f.logger.Warn("Merchant mappings file not found", logging.Field{Key: logging.FieldFile, Value: f.Path})
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading merchant mappings file: %w", err)
	}

	var wrapped models.MerchantMappings
	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Merchants != nil {
		f.logger.Debug("Loaded merchant mappings",
			logging.Field{Key: logging.FieldCount, Value: len(wrapped.Merchants)},
			logging.Field{Key: logging.FieldFile, Value: path})
		return wrapped.Merchants, nil
	}

	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing merchant mappings: %w", err)
	}
	if mappings == nil {
		mappings = map[string]string{}
	}

	f.logger.Debug("Loaded merchant mappings",
		logging.Field{Key: logging.FieldCount, Value: len(mappings)},
		logging.Field{Key: logging.FieldFile, Value: path})
	return mappings, nil
}

// Save writes the mappings under a top-level "merchants:" key, creating the
// parent directory when needed.
func (f *MappingFile) Save(mappings map[string]string) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	data, err := yaml.Marshal(models.MerchantMappings{Merchants: mappings})
	if err != nil {
		return fmt.Errorf("error marshaling merchant mappings: %w", err)
	}

	if err := os.WriteFile(f.Path, data, models.PermissionExport); err != nil {
		return fmt.Errorf("error writing merchant mappings: %w", err)
	}

	f.logger.Debug("Saved merchant mappings",
		logging.Field{Key: logging.FieldCount, Value: len(mappings)},
		logging.Field{Key: logging.FieldFile, Value: f.Path})
	return nil
}
