package tablefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
)

var (
	ErrNotDirectory    = errors.New("tablefile: output parent exists and is not a directory")
	ErrWriteIncomplete = errors.New("tablefile: a write was incomplete")
)

const (
	defaultDirMode  = os.FileMode(0755)
	defaultFileMode = os.FileMode(0644)
	tempPattern     = ".huff2c-*"
)

type Options struct {
	DirMode  os.FileMode
	FileMode os.FileMode
}

type Option func(*Options)

func WithDirMode(mode os.FileMode) Option {
	return func(o *Options) { o.DirMode = mode }
}

func WithFileMode(mode os.FileMode) Option {
	return func(o *Options) { o.FileMode = mode }
}

// Writer replaces generated files in place. Either the complete new content
// is visible at the target path or the previous file is left untouched.
type Writer struct {
	log  logger.Logger
	opts Options
}

func NewWriter(log logger.Logger, opts ...Option) *Writer {
	w := &Writer{
		log:  log,
		opts: Options{DirMode: defaultDirMode, FileMode: defaultFileMode},
	}
	for _, o := range opts {
		o(&w.opts)
	}
	return w
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func (w *Writer) EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	err := os.MkdirAll(dir, w.opts.DirMode)
	if err == nil {
		return nil
	}
	// MkdirAll can lose a creation race with another process.
	if errors.Is(err, fs.ErrExist) {
		fi, statErr := os.Stat(dir)
		if statErr == nil && fi.IsDir() {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return err
}

// WriteFile writes data to filename, creating its directory first.
func (w *Writer) WriteFile(filename string, data []byte) (err error) {
	dir := filepath.Dir(filename)
	if err = w.EnsureDir(dir); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	n, err := f.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %s", ErrWriteIncomplete, filename)
	}
	if err = f.Chmod(w.opts.FileMode); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpName, filename); err != nil {
		return err
	}
	w.log.Debugf("wrote %d bytes to %s", len(data), filename)
	return nil
}
