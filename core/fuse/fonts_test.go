package fuse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/brandpipe/core"
)

func TestBuildFontSetRoles(t *testing.T) {
	t.Parallel()

	set := BuildFontSet([]core.FontCandidate{
		{Family: "Montserrat", Source: core.FontSourceGoogleLink},
		{Family: "Open Sans", Source: core.FontSourceCSS},
		{Family: "Lato", Source: core.FontSourceCSS},
	})
	require.Len(t, set, 3)

	assert.Equal(t, "Montserrat", set[0].Family)
	assert.True(t, set[0].IsPrimary)
	assert.Equal(t, "Display", set[0].Style)

	assert.Equal(t, "Open Sans", set[1].Family)
	assert.True(t, set[1].IsBody)
	assert.Equal(t, "Body", set[1].Style)

	assert.False(t, set[2].IsPrimary)
	assert.False(t, set[2].IsBody)
}

func TestBuildFontSetDeduplicates(t *testing.T) {
	t.Parallel()

	set := BuildFontSet([]core.FontCandidate{
		{Family: "Montserrat"},
		{Family: "montserrat"},
		{Family: " Montserrat "},
	})
	assert.Len(t, set, 1)
}

func TestBuildFontSetFallback(t *testing.T) {
	t.Parallel()

	set := BuildFontSet(nil)
	require.Len(t, set, 1)
	assert.Equal(t, DefaultFontFamily, set[0].Family)
	assert.True(t, set[0].IsPrimary)
}

func TestBuildFontSetCapped(t *testing.T) {
	t.Parallel()

	cands := []core.FontCandidate{
		{Family: "One"}, {Family: "Two"}, {Family: "Three"},
		{Family: "Four"}, {Family: "Five"}, {Family: "Six"},
	}
	assert.Len(t, BuildFontSet(cands), 5)
}
