package platform

import (
	"bytes"
	"fmt"
	"runtime"
	"unicode/utf8"
)

// decodePath turns a caller-supplied path buffer into a name the os layer
// accepts. A single trailing NUL terminator is tolerated; any other NUL byte
// would silently truncate the path at the system call and is rejected.
func decodePath(path []byte) (string, error) {
	if n := len(path); n > 0 && path[n-1] == 0 {
		path = path[:n-1]
	}
	if len(path) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if i := bytes.IndexByte(path, 0); i >= 0 {
		return "", fmt.Errorf("%w: NUL byte at offset %d", ErrInvalidPath, i)
	}
	// Windows paths are converted to UTF-16; invalid sequences would be
	// replaced with U+FFFD and name a different file.
	if runtime.GOOS == "windows" && !utf8.Valid(path) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrInvalidPath)
	}
	return string(path), nil
}

func decodeError(path []byte, err error) *Error {
	return &Error{
		Reason: ReasonInvalidInput,
		Step:   StepDecode,
		Path:   fmt.Sprintf("%q", path),
		Err:    err,
	}
}
