package platform

import "strings"

// Status is the packed form of Attributes exchanged with external callers.
// Only the three flag bits below are ever set.
type Status uint64

const (
	StatusValid    Status = 1 << 62 // entry exists
	StatusFolder   Status = 1 << 61 // entry is a directory
	StatusReadOnly Status = 1 << 60 // owner write permission is absent

	statusMask = StatusValid | StatusFolder | StatusReadOnly
)

// Attributes is a snapshot of one entry's attribute state.
type Attributes struct {
	Exists   bool
	IsFolder bool
	ReadOnly bool
}

// Pack encodes a into a Status. A non-existent entry always packs to zero.
func (a Attributes) Pack() Status {
	if !a.Exists {
		return 0
	}
	s := StatusValid
	if a.IsFolder {
		s |= StatusFolder
	}
	if a.ReadOnly {
		s |= StatusReadOnly
	}
	return s
}

// Unpack decodes s. Reserved bits are ignored, and FOLDER and READ_ONLY are
// dropped when VALID is unset.
func Unpack(s Status) Attributes {
	if s&StatusValid == 0 {
		return Attributes{}
	}
	return Attributes{
		Exists:   true,
		IsFolder: s&StatusFolder != 0,
		ReadOnly: s&StatusReadOnly != 0,
	}
}

// Has reports whether every bit of flag is set in s.
func (s Status) Has(flag Status) bool {
	return s&flag == flag
}

// String renders the set flags as "VALID|FOLDER|READ_ONLY", or "0".
func (s Status) String() string {
	var names []string
	if s&StatusValid != 0 {
		names = append(names, "VALID")
	}
	if s&StatusFolder != 0 {
		names = append(names, "FOLDER")
	}
	if s&StatusReadOnly != 0 {
		names = append(names, "READ_ONLY")
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}
