package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

var _ Store = (*Local)(nil)

// Local keeps frames as files under a directory.
type Local struct {
	fs  afero.Fs
	dir string
}

// NewLocal returns a store rooted at dir on fsys. The directory is created
// when missing.
func NewLocal(fsys afero.Fs, dir string) (*Local, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory %s: %w", dir, err)
	}
	return &Local{fs: fsys, dir: dir}, nil
}

// Dir returns the root directory.
func (s *Local) Dir() string { return s.dir }

// Path returns the file path of a frame.
func (s *Local) Path(name string) (string, error) {
	n, err := cleanName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, filepath.FromSlash(n)), nil
}

// Save writes the frame to a temporary file and renames it into place, so
// watchers never see a partial frame.
func (s *Local) Save(_ context.Context, name string, f *Frame) error {
	p, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	b, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(p), ".frame-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := s.fs.Rename(tmp.Name(), p); err != nil {
		_ = s.fs.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *Local) Load(_ context.Context, name string) (*Frame, error) {
	p, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	b, err := afero.ReadFile(s.fs, p)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return decode(name, b)
}

func (s *Local) List(_ context.Context) ([]string, error) {
	var names []string
	err := afero.Walk(s.fs, s.dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(p) != Extension {
			return nil
		}
		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.dir, err)
	}
	sort.Strings(names)
	return names, nil
}

func decode(name string, b []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &f, nil
}
