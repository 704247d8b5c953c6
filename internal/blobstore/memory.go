package blobstore

import (
	"context"
	"io"
	"sync"

	dErrors "renalize/pkg/domain-errors"
)

// MemoryUploader records uploads in memory. Test double with optional
// per-path failure injection.
type MemoryUploader struct {
	mu      sync.Mutex
	bucket  string
	objects map[string][]byte
	failOn  map[string]bool
	failAll bool
}

// NewMemoryUploader creates an empty in-memory uploader for the named bucket.
func NewMemoryUploader(bucket string) *MemoryUploader {
	return &MemoryUploader{
		bucket:  bucket,
		objects: make(map[string][]byte),
		failOn:  make(map[string]bool),
	}
}

// FailOn makes uploads to objectPath fail.
func (u *MemoryUploader) FailOn(objectPath string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failOn[objectPath] = true
}

// FailAll makes every upload fail.
func (u *MemoryUploader) FailAll() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failAll = true
}

func (u *MemoryUploader) Upload(ctx context.Context, r io.Reader, objectPath string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.failAll || u.failOn[objectPath] {
		return "", dErrors.New(dErrors.CodeUnavailable, "injected upload failure")
	}
	u.objects[objectPath] = data
	return Ref(u.bucket, objectPath), nil
}

// Object returns the stored bytes for a path.
func (u *MemoryUploader) Object(objectPath string) ([]byte, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	data, ok := u.objects[objectPath]
	return data, ok
}

// Len reports how many objects were stored.
func (u *MemoryUploader) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.objects)
}
