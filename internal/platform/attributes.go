package platform

import (
	"os"
	"time"
)

// chtimes is replaced in tests to make the timestamp step fail.
var chtimes = os.Chtimes

// CopyAttributes makes the read-only state of destination match source and,
// when copyLastModified is set, gives destination the last-modified time of
// source. The access time of destination is never changed.
//
// Both entries are looked up before anything is modified, so a missing source
// or destination leaves destination untouched. If the read-only state was
// applied but the timestamp could not be, the read-only change is kept and
// the returned error reports StepTimes.
func CopyAttributes(source, destination []byte, copyLastModified bool) error {
	src, err := decodePath(source)
	if err != nil {
		return decodeError(source, err)
	}
	dst, err := decodePath(destination)
	if err != nil {
		return decodeError(destination, err)
	}

	se, err := stat(src)
	if err != nil {
		return newError(StepStat, src, err)
	}
	de, err := stat(dst)
	if err != nil {
		return newError(StepStat, dst, err)
	}

	if err := applyReadOnly(dst, de, se.readOnly()); err != nil {
		return err
	}

	if !copyLastModified {
		return nil
	}

	// A zero access time tells Chtimes to leave it alone.
	if err := chtimes(dst, time.Time{}, se.modTime); err != nil {
		return newError(StepTimes, dst, err)
	}
	return nil
}
