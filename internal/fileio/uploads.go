package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Uploads stores uploaded documents on disk under a single folder, one file
// per task named "<task_id>_<filename>".
type Uploads struct {
	rootDir string
}

func NewUploads(rootDir string) *Uploads {
	return &Uploads{rootDir: rootDir}
}

// EnsureRoot creates the upload folder if it does not exist yet.
func (u *Uploads) EnsureRoot() error {
	return os.MkdirAll(u.rootDir, 0755)
}

// PathFor returns the on-disk path for a task's document.
func (u *Uploads) PathFor(taskID, filename string) string {
	return filepath.Join(u.rootDir, fmt.Sprintf("%s_%s", taskID, filepath.Base(filename)))
}

// Save streams an uploaded document to disk and returns its path. A partially
// written file is removed on error.
func (u *Uploads) Save(taskID, filename string, stream io.Reader) (string, error) {
	if err := u.EnsureRoot(); err != nil {
		return "", err
	}

	path := u.PathFor(taskID, filename)
	outFile, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(outFile, stream); err != nil {
		outFile.Close()
		_ = os.Remove(path)
		return "", err
	}

	if err := outFile.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

// Find locates the stored document for a task and returns its path and the
// original filename. os.ErrNotExist is returned when no document is stored.
func (u *Uploads) Find(taskID string) (string, string, error) {
	matches, err := filepath.Glob(filepath.Join(u.rootDir, taskID+"_*"))
	if err != nil {
		return "", "", err
	}
	if len(matches) == 0 {
		return "", "", os.ErrNotExist
	}

	path := matches[0]
	filename := strings.TrimPrefix(filepath.Base(path), taskID+"_")
	return path, filename, nil
}

// Remove deletes every stored document belonging to a task. Missing files are
// not an error.
func (u *Uploads) Remove(taskID string) error {
	matches, err := filepath.Glob(filepath.Join(u.rootDir, taskID+"_*"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
