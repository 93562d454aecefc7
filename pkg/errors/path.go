package errors

import (
	"os"
	"unicode"
)

// ValidateDir checks that path names an existing directory.
//
// The returned error is always an INVALID_PATH *Error whose message is
// suitable for printing as-is ("<path> does not exist", "<path> is not a
// directory").
func ValidateDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "%q contains invalid characters", path)
		}
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return New(ErrCodeInvalidPath, "%s does not exist", path)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "%s cannot be read", path)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "%s is not a directory", path)
	}
	return nil
}
