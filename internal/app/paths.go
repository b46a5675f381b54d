package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem locations the server reads from.
// All fields are pre-computed strings.
type Paths struct {
	Root    string // project root (working directory by default)
	DataDir string // data/
	Doctors string // data/doctors.json
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	dataDir := filepath.Join(projectRoot, "data")
	return &Paths{
		Root:    projectRoot,
		DataDir: dataDir,
		Doctors: filepath.Join(dataDir, "doctors.json"),
	}
}

// ResolveDataPath returns the data file to use: the default under
// projectRoot when path is empty, path itself when absolute, and path joined
// to projectRoot otherwise.
func ResolveDataPath(projectRoot, path string) string {
	switch {
	case path == "":
		return NewPaths(projectRoot).Doctors
	case filepath.IsAbs(path):
		return path
	default:
		return filepath.Join(projectRoot, path)
	}
}

// DataFileExists reports whether the doctor list is present. The server starts
// without it; requests fail until it appears.
func (p *Paths) DataFileExists() bool {
	info, err := os.Stat(p.Doctors)
	return err == nil && !info.IsDir()
}
