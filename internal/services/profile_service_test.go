package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"o3profile/internal/dataset"
	"o3profile/internal/profile"
	"o3profile/pkg/contracts/domain"
)

func newTestService(t *testing.T) (*ProfileService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flight.csv")
	content := "Altitude_m_MSL,Ozone_ppbv\n100,30\n110,34\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	builder := profile.NewBuilder(dataset.NewCache(nil), nil)
	return NewProfileService(builder, nil, nil), path
}

func TestBuildProfile(t *testing.T) {
	service, path := newTestService(t)

	data, err := service.BuildProfile(context.Background(), domain.Params{
		Source:   path,
		BinWidth: 50,
		Window:   11,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, data.Cleaned)
	assert.NotEmpty(t, data.Rows)
}

func TestBuildProfile_PropagatesPipelineErrors(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.BuildProfile(context.Background(), domain.Params{
		Source:   "missing.csv",
		BinWidth: 50,
		Window:   11,
	})

	var loadErr *dataset.LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestBuildProfile_InvalidParams(t *testing.T) {
	service, path := newTestService(t)

	_, err := service.BuildProfile(context.Background(), domain.Params{
		Source:   path,
		BinWidth: 55,
		Window:   11,
	})

	var paramsErr *profile.ParamsError
	require.ErrorAs(t, err, &paramsErr)
}
