package resource

import (
	"os"

	"github.com/pkg/errors"
)

// Filesystem is a Layer backed directly by the OS filesystem. It is
// stateless (no locking needed: every call is a fresh syscall), matching
// spec §5's resource-layer concurrency requirement without requiring any
// synchronization of its own.
type Filesystem struct{}

// NewFilesystem returns a Filesystem layer rooted at the process's working
// directory conventions — paths are used as given, so a relative path
// (such as one the resolve package returns for a relative input) is
// interpreted against the working directory.
func NewFilesystem() Filesystem { return Filesystem{} }

func (Filesystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %q", path)
}

func (Filesystem) IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %q", path)
	}
	return !info.IsDir(), nil
}

func (Filesystem) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %q", path)
	}
	return info.IsDir(), nil
}

func (Filesystem) Get(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "file %q", path)
		}
		return nil, errors.Wrapf(err, "read %q", path)
	}
	return contents, nil
}
