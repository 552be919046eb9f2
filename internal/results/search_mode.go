package results

// SearchMode identifies how a file was scanned
type SearchMode string

const (
	// SearchModeLine scans decoded text line by line and reports line numbers
	SearchModeLine SearchMode = "line"
	// SearchModeByte scans raw bytes and reports byte offsets
	SearchModeByte SearchMode = "byte"
)

// String returns the string representation of the mode
func (m SearchMode) String() string {
	return string(m)
}

// IsValid reports whether m is a known mode
func (m SearchMode) IsValid() bool {
	return m == SearchModeLine || m == SearchModeByte
}
