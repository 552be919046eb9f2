package types

import "context"

// StringsExtractor extracts runs of printable characters from a file,
// in file order, one run per returned line.
type StringsExtractor interface {
	Extract(ctx context.Context, filePath string, minLength int) ([]string, error)
}
