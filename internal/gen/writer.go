package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteScript writes the script to path, creating parent directories.
// When path is a directory the script's Filename is used inside it.
func WriteScript(script *GeneratedScript, path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, script.Filename)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, script.Content, filePerm); err != nil {
		return fmt.Errorf("writing script %s: %w", path, err)
	}

	return nil
}

// WriteTo writes the script source to w.
func (s *GeneratedScript) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Content)
	return int64(n), err
}
