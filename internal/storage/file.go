package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultHighScoreFile is the file name the high score is kept in.
const DefaultHighScoreFile = "highscore.dat"

// FileStore keeps the high score as a single 4-byte big-endian integer.
// It is safe for concurrent use within one process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) (*FileStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the high score. A missing file yields snake.ErrNoHighScore.
func (f *FileStore) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, snake.ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}
	if len(data) < 4 {
		return 0, fmt.Errorf("storage: %s is truncated (%d bytes)", f.path, len(data))
	}
	return int(int32(binary.BigEndian.Uint32(data[:4]))), nil
}

// Save writes score unless the file already holds a higher one. The file is
// replaced atomically. An unreadable file is overwritten.
func (f *FileStore) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if current, err := f.read(); err == nil && current >= score {
		return nil
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(int32(score)))

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file for %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name()) // No-op after a successful rename

	if _, err := tmp.Write(buf[:]); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

var _ snake.HighScoreStore = (*FileStore)(nil)

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}
