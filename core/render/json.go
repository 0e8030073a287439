// Package render converts a BrandProfile into output formats.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/brandpipe/core"
)

// JSONRenderer writes the profile as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the profile.
func (r *JSONRenderer) Render(profile *core.BrandProfile) ([]byte, error) {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling profile: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
