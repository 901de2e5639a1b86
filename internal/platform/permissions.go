package platform

import "time"

const ownerWrite = 0o200

// Query returns the current attributes of the entry at path, following
// symbolic links. A path that does not exist or cannot be reached is not an
// error: it yields the zero Attributes. Only an invalid path buffer or an
// unexpected platform failure is returned as an error.
func Query(path []byte) (Attributes, error) {
	name, err := decodePath(path)
	if err != nil {
		return Attributes{}, decodeError(path, err)
	}

	e, err := stat(name)
	if err != nil {
		perr := newError(StepStat, name, err)
		switch perr.Reason {
		case ReasonNotFound, ReasonPermissionDenied:
			// EACCES from stat means a parent directory cannot be searched.
			return Attributes{}, nil
		}
		return Attributes{}, perr
	}

	return Attributes{
		Exists:   true,
		IsFolder: e.dir,
		ReadOnly: e.readOnly(),
	}, nil
}

// SetReadOnly removes (value true) or restores (value false) the owner-write
// permission bit of the entry at path. All other permission bits are left as
// they are, and the change is made with a single chmod call. Setting the bit
// to the state it already has succeeds without touching the entry.
//
// On platforms without a read-only concept this is a no-op that succeeds.
func SetReadOnly(path []byte, value bool) error {
	name, err := decodePath(path)
	if err != nil {
		return decodeError(path, err)
	}

	e, err := stat(name)
	if err != nil {
		return newError(StepStat, name, err)
	}
	return applyReadOnly(name, e, value)
}

func applyReadOnly(name string, e entry, value bool) error {
	if !readOnlySupported {
		return nil
	}

	mode := e.mode | ownerWrite
	if value {
		mode = e.mode &^ ownerWrite
	}
	if mode == e.mode {
		return nil
	}

	if err := chmod(name, mode); err != nil {
		return newError(StepChmod, name, err)
	}
	return nil
}

// entry is the subset of stat information the bridge works with.
type entry struct {
	mode    uint32 // permission bits plus setuid, setgid and sticky
	dir     bool
	modTime time.Time
}

func (e entry) readOnly() bool {
	return readOnlySupported && e.mode&ownerWrite == 0
}
