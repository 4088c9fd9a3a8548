// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultBinary is the MetaMap executable looked up on PATH when no binary
// is configured.
const DefaultBinary = "metamap"

// MetaMapConfig holds the settings for locating and running the MetaMap
// executable.
type MetaMapConfig struct {
	// Binary is the MetaMap executable name or path (default "metamap").
	Binary string `json:"binary" yaml:"binary"`

	// TempDir is the directory for staged input and output files.
	// Empty uses the OS default temp directory.
	TempDir string `json:"temp_dir,omitempty" yaml:"temp_dir,omitempty"`

	// Timeout bounds a single invocation. Zero waits for MetaMap to exit
	// on its own, however long that takes.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// BinaryOrDefault returns Binary, or DefaultBinary when it is unset.
func (c MetaMapConfig) BinaryOrDefault() string {
	if c.Binary == "" {
		return DefaultBinary
	}
	return c.Binary
}
