package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func TestNewAppInfoService_Version(t *testing.T) {
	tests := []struct {
		name        string
		cfgVersion  string
		buildInfo   models.AppBuildInfo
		wantVersion string
		wantErr     error
	}{
		{name: "configured version", cfgVersion: "3.1.4", wantVersion: "3.1.4"},
		{
			name:        "linked version wins",
			cfgVersion:  "dev",
			buildInfo:   models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-03-01", "abc123"),
			wantVersion: "v1.2.3-beta+build.42",
		},
		{
			name:        "linked version without config",
			buildInfo:   models.NewAppBuildInfo("v2.0.0", "", ""),
			wantVersion: "v2.0.0",
		},
		{name: "no version anywhere", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.cfgVersion}, tt.buildInfo, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v1.0.0", "2026-03-01", "abc123")
	svc, err := NewAppInfoService(config.App{}, buildInfo, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "2026-03-01", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}
