// Package loader provides a filesystem-backed implementation of
// parser.Loader: it resolves a logical @import path against the SCSS
// partial-file conventions, memoizes loaded buffers by content hash, and
// optionally watches resolved files for changes.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/crypto/blake2b"
)

// FileSystem resolves @import logical paths against a list of search
// directories, following the SCSS partial convention: for a logical path
// "foo/bar", it first tries "foo/_bar.scss", then "foo/bar.scss" (and the
// bare, extension-supplied path if the logical path already carries one).
// It memoizes loaded buffers by content hash: every Load reads the file
// from disk, and a buffer whose content was already seen is replaced by the
// earlier copy, so identical content is held in memory only once.
type FileSystem struct {
	roots []string

	mu      sync.Mutex
	byHash  map[[32]byte][]byte
	watcher *fsnotify.Watcher
	changes chan string
}

// New returns a FileSystem that resolves imports against roots, in order.
// The directory containing the entry file should normally be roots[0].
func New(roots ...string) *FileSystem {
	return &FileSystem{
		roots:  roots,
		byHash: make(map[[32]byte][]byte),
	}
}

// Load implements parser.Loader. canonicalPath is the resolved absolute
// path; it is the watch target if watching is enabled. Nested @imports are
// resolved against the same roots, not against the importing file's
// directory.
func (fs *FileSystem) Load(logicalPath string) ([]byte, string, error) {
	canonicalPath, err := fs.resolve(logicalPath)
	if err != nil {
		return nil, "", err
	}
	buf, err := os.ReadFile(canonicalPath)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", canonicalPath, err)
	}

	sum := blake2b.Sum256(buf)
	fs.mu.Lock()
	if cached, ok := fs.byHash[sum]; ok {
		buf = cached
	} else {
		fs.byHash[sum] = buf
	}
	watching := fs.watcher != nil
	fs.mu.Unlock()

	if watching {
		if err := fs.watcher.Add(canonicalPath); err != nil {
			return nil, "", fmt.Errorf("watch %s: %w", canonicalPath, err)
		}
	}
	return buf, canonicalPath, nil
}

// resolve tries, for each root, the partial form ("_name.scss") before
// the plain form ("name.scss"). A logical path that already carries an
// extension is tried as-is, without either suffix, against each root.
func (fs *FileSystem) resolve(logicalPath string) (string, error) {
	dir, base := filepath.Split(logicalPath)
	ext := filepath.Ext(base)

	var candidates []string
	if ext != "" {
		candidates = []string{logicalPath}
	} else {
		candidates = []string{
			filepath.Join(dir, "_"+base+".scss"),
			filepath.Join(dir, base+".scss"),
		}
	}

	for _, root := range fs.roots {
		for _, candidate := range candidates {
			full := filepath.Join(root, candidate)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				abs, err := filepath.Abs(full)
				if err != nil {
					return "", fmt.Errorf("resolve %s: %w", logicalPath, err)
				}
				return abs, nil
			}
		}
	}
	return "", fmt.Errorf("cannot find %q in any of %v", logicalPath, fs.roots)
}

// Watch starts watching every file this FileSystem loads from now on for
// changes, delivering their canonical paths on the channel returned by
// Changes. Files loaded before Watch was called are not watched. It runs its own goroutine and
// never touches the parser or its arena directly; the caller is
// responsible for re-parsing on receipt.
func (fs *FileSystem) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	fs.mu.Lock()
	fs.watcher = w
	fs.changes = make(chan string)
	fs.mu.Unlock()

	go func() {
		defer close(fs.changes)
		for event := range w.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fs.changes <- event.Name
			}
		}
	}()
	return nil
}

// Changes returns the channel of canonical paths that have changed on disk.
// It is nil until Watch has been called.
func (fs *FileSystem) Changes() <-chan string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.changes
}

// Close stops watching, if Watch was ever called.
func (fs *FileSystem) Close() error {
	fs.mu.Lock()
	w := fs.watcher
	fs.watcher = nil
	fs.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}
