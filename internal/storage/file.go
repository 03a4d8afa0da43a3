package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink replaces a file with each document. Stage writes the new content to a
// temporary file next to the destination and Commit renames it into place, so a reader
// never sees a partial document and an aborted or failed write leaves the previous one intact.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the destination file path.
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Stage(name string, data []byte) (Staged, error) {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s dir: %w", name, err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create %s tmp: %w", name, err)
	}
	staged := &stagedFile{name: name, tmpPath: tmp.Name(), path: s.path}

	content := make([]byte, 0, len(data)+1)
	content = append(content, data...)
	content = append(content, '\n')

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		staged.Abort()
		return nil, fmt.Errorf("write %s tmp: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		staged.Abort()
		return nil, fmt.Errorf("close %s tmp: %w", name, err)
	}
	if err := os.Chmod(staged.tmpPath, 0o644); err != nil {
		staged.Abort()
		return nil, fmt.Errorf("chmod %s tmp: %w", name, err)
	}
	return staged, nil
}

type stagedFile struct {
	name    string
	tmpPath string
	path    string
}

func (f *stagedFile) Commit() error {
	if err := os.Rename(f.tmpPath, f.path); err != nil {
		f.Abort()
		return fmt.Errorf("rename %s: %w", f.name, err)
	}
	return nil
}

func (f *stagedFile) Abort() {
	os.Remove(f.tmpPath)
}
