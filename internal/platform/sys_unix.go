//go:build linux || darwin || freebsd || netbsd || openbsd

package platform

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

const readOnlySupported = true

func stat(name string) (entry, error) {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return entry{}, &os.PathError{Op: "stat", Path: name, Err: err}
	}

	mode := uint32(st.Mode)
	return entry{
		mode:    mode & 0o7777,
		dir:     mode&unix.S_IFMT == unix.S_IFDIR,
		modTime: time.Unix(st.Mtim.Unix()),
	}, nil
}

func chmod(name string, mode uint32) error {
	if err := unix.Chmod(name, mode); err != nil {
		return &os.PathError{Op: "chmod", Path: name, Err: err}
	}
	return nil
}

// unreachable reports errors that mean the path cannot resolve to an entry
// even though no component is reported missing.
func unreachable(err error) bool {
	return errors.Is(err, unix.ENOTDIR) ||
		errors.Is(err, unix.ELOOP) ||
		errors.Is(err, unix.ENAMETOOLONG)
}

func rejected(err error) bool {
	return errors.Is(err, unix.EROFS)
}
