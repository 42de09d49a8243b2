package filesystem

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// mockWriter buffers writes and commits them to the filesystem on Close
type mockWriter struct {
	mfs  *MockFileSystem
	path string
	buf  bytes.Buffer
}

func (w *mockWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *mockWriter) Close() error {
	// Commit a non-nil slice so an empty file reads back as []byte{},
	// matching what os.ReadFile reports for a real empty file.
	content := make([]byte, w.buf.Len())
	copy(content, w.buf.Bytes())

	w.mfs.files[w.path] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}
	return nil
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/workspace",
	}
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}

	// Ensure parent directories exist
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.AddDir(dir)
		}
		dir = filepath.Dir(dir)
	}
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}

	// Ensure parent directories exist
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.AddDir(dir)
		}
		dir = filepath.Dir(dir)
	}
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, fs.ErrNotExist
	}

	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}, nil
}

// Lstat behaves like Stat: the mock has no symlinks.
func (mfs *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return mfs.Stat(path)
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	cleanPath := filepath.Clean(path)

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, fs.ErrNotExist
	}
	if !file.IsDir {
		return nil, errors.New("not a directory")
	}

	var entries []fs.DirEntry
	for p, f := range mfs.files {
		dir := filepath.Dir(p)
		if dir == cleanPath {
			name := filepath.Base(p)
			info := &mockFileInfo{
				name:    name,
				size:    int64(len(f.Content)),
				mode:    f.Mode,
				modTime: f.ModTime,
				isDir:   f.IsDir,
			}
			entries = append(entries, &mockDirEntry{info: info})
		}
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

func (mfs *MockFileSystem) Mkdir(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; exists {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	if !mfs.parentExists(cleanPath) {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
	}

	mfs.files[cleanPath] = &MockFile{
		Mode:    perm | fs.ModeDir,
		ModTime: time.Now(),
		IsDir:   true,
	}
	return nil
}

func (mfs *MockFileSystem) Rename(oldPath, newPath string) error {
	oldClean := filepath.Clean(oldPath)
	newClean := filepath.Clean(newPath)

	file, exists := mfs.files[oldClean]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if !mfs.parentExists(newClean) {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	if file.IsDir {
		prefix := oldClean + string(filepath.Separator)
		for p, f := range mfs.files {
			if strings.HasPrefix(p, prefix) {
				delete(mfs.files, p)
				mfs.files[filepath.Join(newClean, strings.TrimPrefix(p, prefix))] = f
			}
		}
	}

	delete(mfs.files, oldClean)
	mfs.files[newClean] = file
	return nil
}

// Remove mirrors os.Remove: a directory must be empty to be removable.
func (mfs *MockFileSystem) Remove(path string) error {
	cleanPath := filepath.Clean(path)
	file, exists := mfs.files[cleanPath]
	if !exists {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}

	if file.IsDir {
		prefix := cleanPath + string(filepath.Separator)
		for p := range mfs.files {
			if strings.HasPrefix(p, prefix) {
				return &fs.PathError{Op: "remove", Path: path, Err: errors.New("directory not empty")}
			}
		}
	}

	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) Chtimes(path string, atime, mtime time.Time) error {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return &fs.PathError{Op: "chtimes", Path: path, Err: fs.ErrNotExist}
	}
	file.ModTime = mtime
	return nil
}

func (mfs *MockFileSystem) Open(path string) (io.ReadCloser, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, fs.ErrNotExist
	}
	if file.IsDir {
		return nil, errors.New("is a directory")
	}
	return io.NopCloser(bytes.NewReader(file.Content)), nil
}

func (mfs *MockFileSystem) Create(path string) (io.WriteCloser, error) {
	cleanPath := filepath.Clean(path)
	if file, exists := mfs.files[cleanPath]; exists && file.IsDir {
		return nil, errors.New("is a directory")
	}
	if !mfs.parentExists(cleanPath) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	// Truncate immediately so the entry exists even without writes
	mfs.files[cleanPath] = &MockFile{
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}
	return &mockWriter{mfs: mfs, path: cleanPath}, nil
}

func (mfs *MockFileSystem) Append(path string) (io.WriteCloser, error) {
	cleanPath := filepath.Clean(path)
	if file, exists := mfs.files[cleanPath]; exists && file.IsDir {
		return nil, errors.New("is a directory")
	}
	if !mfs.parentExists(cleanPath) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	w := &mockWriter{mfs: mfs, path: cleanPath}
	if file, exists := mfs.files[cleanPath]; exists {
		w.buf.Write(file.Content)
	}
	return w, nil
}

func (mfs *MockFileSystem) parentExists(cleanPath string) bool {
	dir := filepath.Dir(cleanPath)
	if dir == "." || dir == "/" {
		return true
	}
	parent, exists := mfs.files[dir]
	return exists && parent.IsDir
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

// GetFiles returns all files in the mock filesystem (for debugging)
func (mfs *MockFileSystem) GetFiles() map[string]*MockFile {
	return mfs.files
}
