// Package floorarea computes the basic floor-area figures the checklist's
// derived metrics come from: gross floor area, building coverage ratio, and
// floor area ratio. Pure arithmetic, no judgment logic.
package floorarea

// Floor is one floor's area entry.
type Floor struct {
	Name   string  `json:"name,omitempty"`
	AreaM2 float64 `json:"area_m2"`
}

// Input is one computation request.
type Input struct {
	SiteAreaM2          float64 `json:"site_area_m2,omitempty"`
	BuildingFootprintM2 float64 `json:"building_footprint_m2,omitempty"`
	Floors              []Floor `json:"floors"`
}

// Result carries the computed figures. Ratio pointers are nil when the site
// area is unknown; zero would read as a real (and alarming) ratio.
type Result struct {
	FloorCount          int      `json:"floor_count"`
	GrossFloorAreaM2    float64  `json:"gross_floor_area_m2"`
	CoverageRatioPct    *float64 `json:"coverage_ratio_pct,omitempty"`
	FloorAreaRatioPct   *float64 `json:"floor_area_ratio_pct,omitempty"`
	SiteAreaM2          float64  `json:"site_area_m2,omitempty"`
	BuildingFootprintM2 float64  `json:"building_footprint_m2,omitempty"`
}

// Compute sums floor areas and derives the coverage and floor-area ratios
// when the site area is known.
func Compute(in Input) Result {
	result := Result{
		FloorCount:          len(in.Floors),
		SiteAreaM2:          in.SiteAreaM2,
		BuildingFootprintM2: in.BuildingFootprintM2,
	}
	for _, f := range in.Floors {
		result.GrossFloorAreaM2 += f.AreaM2
	}

	if in.SiteAreaM2 > 0 {
		far := result.GrossFloorAreaM2 / in.SiteAreaM2 * 100
		result.FloorAreaRatioPct = &far
		if in.BuildingFootprintM2 > 0 {
			bcr := in.BuildingFootprintM2 / in.SiteAreaM2 * 100
			result.CoverageRatioPct = &bcr
		}
	}
	return result
}
