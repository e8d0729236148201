package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600
	megabyte    = 1 << 20
)

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled bool
	Dir     string
	// Name defaults to tinyguard.log.
	Name       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// WriteToStderr keeps console output alongside the file.
	WriteToStderr bool
}

// Rotator is an io.Writer that renames the file aside once it grows past
// the size limit and prunes old backups by age and count.
type Rotator struct {
	mu         sync.Mutex
	dir        string
	name       string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	compress   bool

	file *os.File
	size int64
}

// NewRotator opens (or creates) the current log file.
func NewRotator(cfg FileConfig) (*Rotator, error) {
	name := cfg.Name
	if name == "" {
		name = "tinyguard.log"
	}
	maxSize := int64(cfg.MaxSizeMB) * megabyte
	if maxSize <= 0 {
		maxSize = 10 * megabyte
	}

	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	r := &Rotator{
		dir:        cfg.Dir,
		name:       name,
		maxSize:    maxSize,
		maxAge:     time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		maxBackups: cfg.MaxBackups,
		compress:   cfg.Compress,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the current log file path.
func (r *Rotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *Rotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = f
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *Rotator) rotate() error {
	_ = r.file.Close()
	r.file = nil

	backup := r.backupName(time.Now())
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err == nil {
			_ = os.Remove(backup)
		}
	}

	r.prune()
	return r.open()
}

func (r *Rotator) backupName(now time.Time) string {
	base := fmt.Sprintf("%s.%s", r.Path(), now.Format("2006-01-02-15-04-05.000"))
	name := base
	for i := 1; ; i++ {
		_, errPlain := os.Stat(name)
		_, errGz := os.Stat(name + ".gz")
		if os.IsNotExist(errPlain) && os.IsNotExist(errGz) {
			return name
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// prune drops backups older than maxAge, then the oldest beyond maxBackups.
func (r *Rotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var backups []backup
	now := time.Now()

	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.dir, e.Name()))
			continue
		}
		backups = append(backups, backup{name: e.Name(), mod: info.ModTime()})
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b backup) int {
		if c := a.mod.Compare(b.mod); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for _, b := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, b.name))
	}
}

// Close closes the current file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewWithFile builds a logger that also writes to a rotating file when
// fileCfg is enabled. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (logger zerolog.Logger, cleanup func(), err error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	rot, err := NewRotator(fileCfg)
	if err != nil {
		return New(cfg), func() {}, err
	}

	fileLogger := zerolog.New(rot).Level(cfg.Level).With().Timestamp().Logger()
	if !fileCfg.WriteToStderr {
		return fileLogger, func() { _ = rot.Close() }, nil
	}

	multi := zerolog.MultiLevelWriter(consoleWriter(cfg), rot)
	return zerolog.New(multi).Level(cfg.Level).With().Timestamp().Logger(), func() { _ = rot.Close() }, nil
}
