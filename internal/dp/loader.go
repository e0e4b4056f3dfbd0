package dp

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads prescription definitions from a directory tree.
// This interface enables dependency injection and makes testing easier.
type Loader interface {
	// Load reads every prescription under dir. Parse failures do not abort
	// the batch; they come back as a parallel list of error strings.
	Load(dir string) ([]Prescription, []string, error)
}

// FileLoader implements Loader for a directory of YAML files.
type FileLoader struct{}

// NewFileLoader creates a new file-based prescription loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load walks dir for *.yml and *.yaml files and parses each one as a
// Prescription. The identifier is the file's base name without extension.
// Records come back sorted by display name (identifier breaking ties) so
// every downstream pass sees a deterministic order.
func (l *FileLoader) Load(dir string) ([]Prescription, []string, error) {
	var (
		records   []Prescription
		parseErrs []string
	)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}

		rec, perr := loadFile(path)
		if perr != nil {
			parseErrs = append(parseErrs, perr.Error())
			return nil
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read prescription directory: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].ID < records[j].ID
	})

	return records, parseErrs, nil
}

func loadFile(path string) (Prescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Prescription{}, fmt.Errorf("read prescription file %s: %w", path, err)
	}

	var rec Prescription
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Prescription{}, fmt.Errorf("parse prescription %s: %w", path, err)
	}

	base := filepath.Base(path)
	rec.ID = strings.TrimSuffix(base, filepath.Ext(base))
	if rec.Name == "" {
		rec.Name = rec.ID
	}
	return rec, nil
}

// Default instance for package-level convenience.
var defaultLoader = NewFileLoader()

// Load reads prescriptions from dir using the default loader.
func Load(dir string) ([]Prescription, []string, error) {
	return defaultLoader.Load(dir)
}

// Compile-time verification that FileLoader implements Loader
var _ Loader = (*FileLoader)(nil)
