package search

import (
	"errors"
	"io/fs"
	"os"
)

// checkRegularFile reports NotFound, NotAFile or PermissionDenied for paths
// that cannot be searched.
func checkRegularFile(filePath string) (os.FileInfo, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, newError(KindNotFound, filePath, err)
		case errors.Is(err, fs.ErrPermission):
			return nil, newError(KindPermissionDenied, filePath, err)
		default:
			return nil, newError(KindGeneric, filePath, err)
		}
	}

	if !info.Mode().IsRegular() {
		return nil, newError(KindNotAFile, filePath, nil)
	}

	return info, nil
}

// readFile reads the whole file, mapping permission failures to their own kind
func readFile(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, newError(KindPermissionDenied, filePath, err)
		}
		return nil, newError(KindGeneric, filePath, err)
	}
	return content, nil
}
