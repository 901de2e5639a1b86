// Package fsattr is the stable entry point for callers that exchange raw
// path buffers and packed status words, such as a host runtime binding.
//
// GetStat packs the attribute state of a path into a uint64 whose bit layout
// (VALID bit 62, FOLDER bit 61, READ_ONLY bit 60) is identical on every
// platform. SetReadOnly and CopyAttributes collapse their outcome to a bool;
// the reason for a false result is logged, and Go callers that need it can
// use ApplyReadOnly and ApplyAttributes instead.
package fsattr

import (
	"errors"

	"github.com/ecruz165/fsattr/internal/platform"

	log "github.com/sirupsen/logrus"
)

// Status bits of the packed value returned by GetStat.
const (
	StatValid    = uint64(platform.StatusValid)
	StatFolder   = uint64(platform.StatusFolder)
	StatReadOnly = uint64(platform.StatusReadOnly)
)

type (
	Attributes = platform.Attributes
	Error      = platform.Error
	Reason     = platform.Reason
)

const (
	ReasonNone             = platform.ReasonNone
	ReasonNotFound         = platform.ReasonNotFound
	ReasonPermissionDenied = platform.ReasonPermissionDenied
	ReasonPlatformError    = platform.ReasonPlatformError
	ReasonInvalidInput     = platform.ReasonInvalidInput
)

var ErrInvalidPath = platform.ErrInvalidPath

// ReasonOf returns the reason carried by an error from this package.
func ReasonOf(err error) Reason { return platform.ReasonOf(err) }

// IsValid reports whether status describes an existing entry.
func IsValid(status uint64) bool { return status&StatValid != 0 }

// IsFolder reports whether status describes an existing directory.
func IsFolder(status uint64) bool { return IsValid(status) && status&StatFolder != 0 }

// IsReadOnly reports whether status describes an existing read-only entry.
func IsReadOnly(status uint64) bool { return IsValid(status) && status&StatReadOnly != 0 }

// Describe renders the flags of status as "VALID|FOLDER|READ_ONLY", or "0".
func Describe(status uint64) string { return platform.Status(status).String() }

// GetStat returns the packed attribute state of path. A missing path yields
// zero and no error. An error means the path buffer was invalid or the
// platform failed unexpectedly; the caller decides how to surface it.
func GetStat(path []byte) (uint64, error) {
	attrs, err := platform.Query(path)
	if err != nil {
		return 0, err
	}
	return uint64(attrs.Pack()), nil
}

// Query returns the unpacked attribute state of path.
func Query(path []byte) (Attributes, error) {
	return platform.Query(path)
}

// SetReadOnly sets or clears the read-only state of path and reports whether
// the change was applied.
func SetReadOnly(path []byte, value bool) bool {
	return collapse("set read-only", ApplyReadOnly(path, value))
}

// ApplyReadOnly is SetReadOnly with the failure reason preserved.
func ApplyReadOnly(path []byte, value bool) error {
	return platform.SetReadOnly(path, value)
}

// CopyAttributes copies the read-only state, and optionally the last-modified
// time, of source onto destination. It reports whether every requested
// attribute was applied.
func CopyAttributes(source, destination []byte, copyLastModified bool) bool {
	return collapse("copy attributes", ApplyAttributes(source, destination, copyLastModified))
}

// ApplyAttributes is CopyAttributes with the failure reason preserved. A
// read-only change that was applied before a timestamp failure is not undone.
func ApplyAttributes(source, destination []byte, copyLastModified bool) error {
	return platform.CopyAttributes(source, destination, copyLastModified)
}

func collapse(op string, err error) bool {
	if err == nil {
		return true
	}

	fields := log.Fields{"op": op, "reason": platform.ReasonOf(err).String()}
	var perr *platform.Error
	if errors.As(err, &perr) {
		fields["step"] = string(perr.Step)
		fields["path"] = perr.Path
	}

	entry := log.WithFields(fields).WithError(err)
	if platform.ReasonOf(err) == platform.ReasonInvalidInput {
		entry.Warn("Rejected path buffer")
	} else {
		entry.Debug("Could not apply attributes")
	}
	return false
}
