// Package snapshot keeps copies of rendered manifests so a render can be
// rolled back.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cameronsjo/tugboat/internal/fileutil"
)

const (
	// Prefix starts every snapshot directory name.
	Prefix = "snapshot-"
	// DateFormat is the timestamp in snapshot names. Nanoseconds keep names
	// made within the same second apart.
	DateFormat = "20060102-150405.000000000"
	// DefaultKeep is how many snapshots a Store retains.
	DefaultKeep = 10
)

// ErrNotFound indicates an unknown snapshot name.
var ErrNotFound = errors.New("snapshot not found")

// ErrInvalidName indicates a snapshot name that is not a directory in the
// store.
var ErrInvalidName = errors.New("invalid snapshot name")

// Info describes one snapshot.
type Info struct {
	Name      string
	Path      string
	Created   time.Time
	FileCount int
}

// Store holds the snapshots of one region's manifests.
type Store struct {
	dir  string
	keep int
}

// New returns the store for region under outputDir.
func New(outputDir, region string) *Store {
	return &Store{
		dir:  filepath.Join(outputDir, ".snapshots", region),
		keep: DefaultKeep,
	}
}

// Dir returns where snapshots are kept.
func (s *Store) Dir() string {
	return s.dir
}

// SetKeep changes how many snapshots Cleanup retains.
func (s *Store) SetKeep(n int) {
	s.keep = n
}

// Create copies srcDir into a new snapshot and prunes old ones. It returns
// the snapshot name, or "" when srcDir is missing or empty.
func (s *Store) Create(srcDir string) (string, error) {
	if !dirHasContent(srcDir) {
		return "", nil
	}

	name := Prefix + time.Now().Format(DateFormat) + "-" + uuid.New().String()[:8]
	path := filepath.Join(s.dir, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}
	if err := fileutil.CopyDir(srcDir, path); err != nil {
		os.RemoveAll(path)
		return "", fmt.Errorf("copy %s to snapshot: %w", srcDir, err)
	}

	if err := s.Cleanup(); err != nil {
		return name, err
	}
	return name, nil
}

// List returns snapshots, newest first.
func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshots directory: %w", err)
	}

	var snapshots []Info
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), Prefix) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		created, ok := parseCreated(entry.Name())
		if !ok {
			info, err := entry.Info()
			if err != nil {
				continue
			}
			created = info.ModTime()
		}

		snapshots = append(snapshots, Info{
			Name:      entry.Name(),
			Path:      path,
			Created:   created,
			FileCount: countFiles(path),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Created.After(snapshots[j].Created)
	})
	return snapshots, nil
}

// Latest returns the newest snapshot.
func (s *Store) Latest() (Info, error) {
	snapshots, err := s.List()
	if err != nil {
		return Info{}, err
	}
	if len(snapshots) == 0 {
		return Info{}, fmt.Errorf("%w: no snapshots in %s", ErrNotFound, s.dir)
	}
	return snapshots[0], nil
}

// Restore replaces dstDir with the named snapshot. The snapshot is staged
// next to dstDir, the current content of dstDir is snapshotted, and the
// staged tree is swapped in by rename.
func (s *Store) Restore(name, dstDir string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	id := uuid.New().String()[:8]
	tempDir := dstDir + ".restore-temp-" + id
	oldDir := dstDir + ".restore-old-" + id

	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return fmt.Errorf("create restore directory: %w", err)
	}
	if err := fileutil.CopyDir(path, tempDir); err != nil {
		os.RemoveAll(tempDir)
		return fmt.Errorf("copy snapshot: %w", err)
	}

	// Staged first: pruning here may remove the snapshot being restored.
	if _, err := s.Create(dstDir); err != nil {
		os.RemoveAll(tempDir)
		return fmt.Errorf("snapshot current manifests: %w", err)
	}

	_, statErr := os.Stat(dstDir)
	exists := statErr == nil

	if exists {
		if err := os.Rename(dstDir, oldDir); err != nil {
			os.RemoveAll(tempDir)
			return fmt.Errorf("move current manifests aside: %w", err)
		}
	}

	if err := os.Rename(tempDir, dstDir); err != nil {
		if exists {
			if recoverErr := os.Rename(oldDir, dstDir); recoverErr != nil {
				os.RemoveAll(tempDir)
				return fmt.Errorf("swap in snapshot: %w (recovery also failed: %v)", err, recoverErr)
			}
		}
		os.RemoveAll(tempDir)
		return fmt.Errorf("swap in snapshot: %w", err)
	}

	if exists {
		os.RemoveAll(oldDir)
	}
	return nil
}

// Cleanup removes all but the newest snapshots.
func (s *Store) Cleanup() error {
	snapshots, err := s.List()
	if err != nil {
		return err
	}
	if len(snapshots) <= s.keep {
		return nil
	}

	var errs []string
	for _, snap := range snapshots[s.keep:] {
		if err := os.RemoveAll(snap.Path); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", snap.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("remove %d old snapshot(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

// parseCreated reads the timestamp out of a snapshot name.
func parseCreated(name string) (time.Time, bool) {
	stamp := strings.TrimPrefix(name, Prefix)
	i := strings.LastIndex(stamp, "-")
	if i < 0 {
		return time.Time{}, false
	}
	created, err := time.Parse(DateFormat, stamp[:i])
	if err != nil {
		return time.Time{}, false
	}
	return created, true
}

func dirHasContent(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}

func countFiles(dir string) int {
	count := 0
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
