// Package naming allocates collision-free destination paths within a target
// directory.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Resolver tracks destination paths claimed during a single run and resolves
// filename collisions by appending "_N" suffixes before the extension. A
// claimed path is never handed out twice, even before any file is physically
// created, so two sources named photo.jpg cannot plan onto the same
// destination. One Resolver is scoped to one run; concurrent runs each get
// their own instance. All methods are goroutine-safe.
type Resolver struct {
	mu      sync.Mutex
	claimed map[string]struct{}
}

// NewResolver creates a ready-to-use resolver with an empty claim set.
func NewResolver() *Resolver {
	return &Resolver{claimed: make(map[string]struct{})}
}

// SeedFromDir claims every existing entry of dir so planning never assigns a
// destination that already exists there. A missing dir seeds nothing.
func (r *Resolver) SeedFromDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.claimed[filepath.Join(dir, e.Name())] = struct{}{}
	}
	return nil
}

// Resolve returns a unique destination path for filename inside targetDir.
// When targetDir/filename is free it is returned as-is; otherwise stem_N.ext
// candidates are tried for increasing N until one is free of both disk
// contents and the claim set. The winning path is claimed before returning.
//
// For a fixed input order the output is deterministic; a different input
// order can change which file keeps the unsuffixed name.
func (r *Resolver) Resolve(targetDir, filename string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	candidate := filepath.Join(targetDir, filename)
	for counter := 1; r.taken(candidate); counter++ {
		candidate = filepath.Join(targetDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	r.claimed[candidate] = struct{}{}
	return candidate
}

// taken reports whether path is claimed in this run or present on disk.
// Callers must hold r.mu.
func (r *Resolver) taken(path string) bool {
	if _, ok := r.claimed[path]; ok {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}
