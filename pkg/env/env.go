// Package env consolidates all environment variable reading for the tool.
package env

import (
	"os"
	"strconv"
)

// Environment variable names (single source of truth)
const (
	LOGLevel  = "LOG_LEVEL"
	ChunkSize = "PNGER_CHUNK_SIZE"
)

// LogLevel returns LOG_LEVEL with default "INFO".
func LogLevel() string {
	if v := os.Getenv(LOGLevel); v != "" {
		return v
	}
	return "INFO"
}

// CopyChunkSize returns PNGER_CHUNK_SIZE in bytes, or 0 when unset or
// invalid so the caller falls back to its built-in default.
func CopyChunkSize() int {
	v := os.Getenv(ChunkSize)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
