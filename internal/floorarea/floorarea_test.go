package floorarea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	result := Compute(Input{
		SiteAreaM2:          330,
		BuildingFootprintM2: 165,
		Floors: []Floor{
			{Name: "1층", AreaM2: 165},
			{Name: "2층", AreaM2: 165},
			{Name: "3층", AreaM2: 132},
		},
	})

	assert.Equal(t, 3, result.FloorCount)
	assert.InDelta(t, 462, result.GrossFloorAreaM2, 1e-9)
	require.NotNil(t, result.FloorAreaRatioPct)
	assert.InDelta(t, 140, *result.FloorAreaRatioPct, 1e-9)
	require.NotNil(t, result.CoverageRatioPct)
	assert.InDelta(t, 50, *result.CoverageRatioPct, 1e-9)
}

func TestCompute_UnknownSiteArea(t *testing.T) {
	result := Compute(Input{
		Floors: []Floor{{AreaM2: 84.5}, {AreaM2: 84.5}},
	})

	assert.InDelta(t, 169, result.GrossFloorAreaM2, 1e-9)
	assert.Nil(t, result.FloorAreaRatioPct, "no ratio without a site area")
	assert.Nil(t, result.CoverageRatioPct)
}

func TestCompute_UnknownFootprint(t *testing.T) {
	result := Compute(Input{
		SiteAreaM2: 200,
		Floors:     []Floor{{AreaM2: 100}},
	})

	require.NotNil(t, result.FloorAreaRatioPct)
	assert.InDelta(t, 50, *result.FloorAreaRatioPct, 1e-9)
	assert.Nil(t, result.CoverageRatioPct, "coverage ratio needs a footprint")
}

func TestCompute_NoFloors(t *testing.T) {
	result := Compute(Input{SiteAreaM2: 100})

	assert.Equal(t, 0, result.FloorCount)
	assert.Zero(t, result.GrossFloorAreaM2)
	require.NotNil(t, result.FloorAreaRatioPct)
	assert.Zero(t, *result.FloorAreaRatioPct)
}
