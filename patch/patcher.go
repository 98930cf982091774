package patch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/iro"
)

// DefaultBackupSuffix is appended to a target path to name its backup.
const DefaultBackupSuffix = ".iro.bak"

var _ iro.Patcher = (*Patcher)(nil)

// Patcher implements iro.Patcher on the local filesystem.
type Patcher struct {
	logger       *slog.Logger
	backupSuffix string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithLogger sets the logger for backups and writes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Patcher) {
		p.logger = l
	}
}

// WithBackupSuffix overrides DefaultBackupSuffix.
func WithBackupSuffix(suffix string) Option {
	return func(p *Patcher) {
		p.backupSuffix = suffix
	}
}

// NewPatcher creates a Patcher.
func NewPatcher(opts ...Option) *Patcher {
	p := &Patcher{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		backupSuffix: DefaultBackupSuffix,
		locks:        make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BackupPath returns where the backup of path is kept.
func (p *Patcher) BackupPath(path string) string {
	return path + p.backupSuffix
}

// Patch replaces the managed section in the file at path with text, or
// appends a new section when the file has none. Missing files and missing
// directories are skipped with ErrFileAccess. The first write to a file
// backs it up; later writes leave the backup alone. Content that would not
// change is not rewritten.
//
// A symlinked path is written through: the link stays in place and the file
// it points to is updated. The backup is kept next to path.
func (p *Patcher) Patch(path string, section iro.ManagedSection, text string) (iro.PatchStatus, error) {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		return iro.StatusSkipped, fmt.Errorf("%s: directory not accessible: %w", filepath.Dir(path), iro.ErrFileAccess)
	}
	if _, err := os.Stat(path); errors.Is(err, iofs.ErrNotExist) {
		return iro.StatusSkipped, fmt.Errorf("%s: file does not exist: %w", path, iro.ErrFileAccess)
	}
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return iro.StatusFailed, fmt.Errorf("%s: %v: %w", path, err, iro.ErrFileAccess)
	}

	unlock := p.lock(real)
	defer unlock()

	info, err := os.Stat(real)
	if err != nil {
		return iro.StatusFailed, fmt.Errorf("%s: %v: %w", path, err, iro.ErrFileAccess)
	}
	content, err := os.ReadFile(real)
	if err != nil {
		return iro.StatusFailed, fmt.Errorf("%s: %v: %w", path, err, iro.ErrFileAccess)
	}

	r, found, err := Find(content, section)
	if err != nil {
		return iro.StatusFailed, fmt.Errorf("%s: %w", path, err)
	}
	status := iro.StatusAppended
	var updated []byte
	if found {
		status = iro.StatusPatched
		updated = Splice(content, r, text)
	} else {
		updated = Append(content, section, text)
	}
	if bytes.Equal(updated, content) {
		p.logger.Debug("section unchanged", "path", path)
		return status, nil
	}

	if err := p.backup(path, content, info.Mode().Perm()); err != nil {
		return iro.StatusFailed, err
	}
	if err := writeAtomic(real, updated, info.Mode().Perm()); err != nil {
		return iro.StatusFailed, err
	}
	p.logger.Debug("section written", "path", real, "status", status)
	return status, nil
}

// lock serializes patches of the same file.
func (p *Patcher) lock(path string) func() {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	p.mu.Lock()
	m, ok := p.locks[key]
	if !ok {
		m = &sync.Mutex{}
		p.locks[key] = m
	}
	p.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// backup copies content next to path unless a backup already exists.
func (p *Patcher) backup(path string, content []byte, perm iofs.FileMode) error {
	dst := p.BackupPath(path)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if errors.Is(err, iofs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create backup %s: %v: %w", dst, err, iro.ErrWrite)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("write backup %s: %v: %w", dst, err, iro.ErrWrite)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close backup %s: %v: %w", dst, err, iro.ErrWrite)
	}
	p.logger.Info("backup created", "path", dst)
	return nil
}

// writeAtomic replaces path with data through a temp file in the same
// directory. On failure the original file is untouched.
func writeAtomic(path string, data []byte, perm iofs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".iro-*")
	if err != nil {
		return fmt.Errorf("create temp file: %v: %w", err, iro.ErrWrite)
	}
	name := tmp.Name()
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(name) // best-effort cleanup
		return fmt.Errorf("%s %s: %v: %w", step, path, err, iro.ErrWrite)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close", err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename %s: %v: %w", path, err, iro.ErrWrite)
	}
	return nil
}

// WriteFile atomically writes data to path with perm, creating parent
// directories. It is used for files iro owns outright, such as exports.
func WriteFile(path string, data []byte, perm iofs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %v: %w", err, iro.ErrWrite)
	}
	return writeAtomic(path, data, perm)
}
