package types

import "io/fs"

// FS abstracts the filesystem operations the installer needs, so backup
// and linking logic can run against a test filesystem.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Removal and relocation
	Remove(name string) error
	Rename(oldpath, newpath string) error
}
