package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Banner(t *testing.T) {
	full := NewAppBuildInfo("v1.4.0", "2026-03-01", "abc123")
	assert.Equal(t, "Build version: v1.4.0\nBuild date: 2026-03-01\nBuild commit: abc123\n", full.Banner())

	local := NewAppBuildInfo("", "", "")
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", local.Banner())
	assert.Empty(t, local.BuildVersion())
}
