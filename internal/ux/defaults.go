package ux

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathDefaults provides the conventional file locations inside a project
// root. Every path takes the root explicitly; nothing here consults the
// process working directory.
type PathDefaults struct {
	DpsmithDir string
	DPDirName  string
}

// NewPathDefaults creates a new PathDefaults with sensible defaults
func NewPathDefaults() *PathDefaults {
	return &PathDefaults{
		DpsmithDir: ".dpsmith",
		DPDirName:  "dps",
	}
}

// DPDir returns the default prescription directory under root
func (pd *PathDefaults) DPDir(root string) string {
	return filepath.Join(root, pd.DPDirName)
}

// StateDir returns the .dpsmith directory under root
func (pd *PathDefaults) StateDir(root string) string {
	return filepath.Join(root, pd.DpsmithDir)
}

// PlanFile returns the compiled plan location under root
func (pd *PathDefaults) PlanFile(root string) string {
	return filepath.Join(root, pd.DpsmithDir, "yadasmith.json")
}

// ValidateRequiredDir checks that a required directory exists and provides a
// helpful error pointing at the command that populates it.
func ValidateRequiredDir(path string, dirType string, hint string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s not found at: %s\n\n%s", dirType, path, hint)
	}
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %s", dirType, path)
	}
	return nil
}
