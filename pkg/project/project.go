package project

const (
	Name    = "misc-mcp"
	Version = "0.1.0"
)
