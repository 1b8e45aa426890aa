package main

// Default limits for CLI commands.
const (
	// DefaultListLimit of zero defers to catalog.list_limit from config.
	DefaultListLimit = 0
	jsonIndent       = "  "
)
