// Package storage provides named disks that source images are read from and
// filled images are written to.
package storage

//go:generate mockgen -source=storage.go -destination=./mock_storage/storage.go

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bounoable/godrive"
)

var (
	// ErrUnconfiguredDisk is returned when a Location refers to a disk that
	// isn't configured.
	ErrUnconfiguredDisk = errors.New("unconfigured disk")

	// ErrFileNotFound is returned when a Location refers to a missing file.
	ErrFileNotFound = errors.New("file not found")

	// ErrIncompleteLocation is returned for a Location without a disk or path.
	ErrIncompleteLocation = errors.New("incomplete location")
)

// Location is an image file on a named disk.
type Location struct {
	Disk string `json:"disk"`
	Path string `json:"path"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%s)", l.Path, l.Disk)
}

// Validate returns ErrIncompleteLocation if l has no disk or no path.
func (l Location) Validate() error {
	switch {
	case l.Disk == "":
		return fmt.Errorf("%w: missing disk for %q", ErrIncompleteLocation, l.Path)
	case l.Path == "":
		return fmt.Errorf("%w: missing path on disk %q", ErrIncompleteLocation, l.Disk)
	}
	return nil
}

// Storage resolves disk names to Disks.
type Storage interface {
	// Disk returns the Disk that was configured with the given name or
	// ErrUnconfiguredDisk.
	Disk(string) (Disk, error)
}

// Disk stores encoded images by path.
type Disk interface {
	// Put writes the encoded image to the specified path, replacing any
	// existing file.
	Put(context.Context, string, []byte) error

	// Get returns the encoded image at the specified path or ErrFileNotFound.
	Get(context.Context, string) ([]byte, error)
}

// Disks is a Storage with a fixed set of disks. A Disks map must not be
// modified while it is in use.
//
//	s := storage.Disks{"images": storage.MemoryDisk()}
type Disks map[string]Disk

// Disk returns the disk with the given name or ErrUnconfiguredDisk.
func (d Disks) Disk(name string) (Disk, error) {
	if disk, ok := d[name]; ok {
		return disk, nil
	}
	return nil, ErrUnconfiguredDisk
}

type godriveStorage struct {
	manager *godrive.Manager
}

// GoDrive returns a Storage whose disks are the disks configured in manager.
func GoDrive(manager *godrive.Manager) Storage {
	return &godriveStorage{manager: manager}
}

func (s *godriveStorage) Disk(name string) (Disk, error) {
	disk, err := s.manager.Disk(name)
	if err != nil {
		var unconfiguredError godrive.UnconfiguredDiskError
		if errors.As(err, &unconfiguredError) {
			return nil, ErrUnconfiguredDisk
		}
		return nil, fmt.Errorf("godrive: %w", err)
	}
	return disk, nil
}

type memoryDisk struct {
	mux   sync.RWMutex
	files map[string][]byte
}

// MemoryDisk returns an in-memory Disk. Put and Get copy the stored bytes.
func MemoryDisk() Disk {
	return &memoryDisk{files: make(map[string][]byte)}
}

func (d *memoryDisk) Put(_ context.Context, path string, b []byte) error {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.files[path] = append([]byte(nil), b...)
	return nil
}

func (d *memoryDisk) Get(_ context.Context, path string) ([]byte, error) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	b, ok := d.files[path]
	if !ok {
		return nil, ErrFileNotFound
	}
	return append([]byte(nil), b...), nil
}

// Read returns the encoded image at loc.
func Read(ctx context.Context, s Storage, loc Location) ([]byte, error) {
	disk, err := resolve(s, loc)
	if err != nil {
		return nil, err
	}

	b, err := disk.Get(ctx, loc.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", loc, err)
	}

	return b, nil
}

// Write stores the encoded image b at loc.
func Write(ctx context.Context, s Storage, loc Location, b []byte) error {
	disk, err := resolve(s, loc)
	if err != nil {
		return err
	}

	if err := disk.Put(ctx, loc.Path, b); err != nil {
		return fmt.Errorf("write %s: %w", loc, err)
	}

	return nil
}

func resolve(s Storage, loc Location) (Disk, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	disk, err := s.Disk(loc.Disk)
	if err != nil {
		return nil, fmt.Errorf("get disk %q: %w", loc.Disk, err)
	}

	return disk, nil
}
