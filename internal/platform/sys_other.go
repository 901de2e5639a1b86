//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// js and wasip1 have no writable permission bits to speak of.
var readOnlySupported = runtime.GOOS != "js" && runtime.GOOS != "wasip1"

func stat(name string) (entry, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return entry{}, err
	}

	m := fi.Mode()
	mode := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		mode |= 0o4000
	}
	if m&fs.ModeSetgid != 0 {
		mode |= 0o2000
	}
	if m&fs.ModeSticky != 0 {
		mode |= 0o1000
	}
	return entry{
		mode:    mode,
		dir:     fi.IsDir(),
		modTime: fi.ModTime(),
	}, nil
}

func chmod(name string, mode uint32) error {
	m := fs.FileMode(mode & 0o777)
	if mode&0o4000 != 0 {
		m |= fs.ModeSetuid
	}
	if mode&0o2000 != 0 {
		m |= fs.ModeSetgid
	}
	if mode&0o1000 != 0 {
		m |= fs.ModeSticky
	}
	return os.Chmod(name, m)
}

func unreachable(error) bool { return false }

func rejected(error) bool { return false }
