package georisk

import "github.com/civiclens/report-service/internal/domain"

// zones is the static catchment catalog for Udaipur. Catalog order matters:
// evaluation stops at the first zone containing the point, not the closest.
// In a larger deployment this would come from a geospatial store.
var zones = []domain.RiskZone{
	// Hospitals
	{ID: "h1", Name: "Geetanjali Medical College & Hospital", Type: domain.ZoneTypeHospital, Lat: 24.5530798, Lng: 73.7321742, RadiusInMeters: 300},
	{ID: "h2", Name: "Alakh Nayan Mandir Eye Hospital", Type: domain.ZoneTypeHospital, Lat: 24.5861106, Lng: 73.7091065, RadiusInMeters: 300},
	{ID: "h3", Name: "J.P. Orthopaedic Hospital", Type: domain.ZoneTypeHospital, Lat: 24.5793365, Lng: 73.7111793, RadiusInMeters: 300},
	{ID: "h4", Name: "Amar Ashish Hospital", Type: domain.ZoneTypeHospital, Lat: 24.5907616, Lng: 73.6923100, RadiusInMeters: 300},
	{ID: "h5", Name: "MB Govt Hospital", Type: domain.ZoneTypeHospital, Lat: 24.5902, Lng: 73.6915, RadiusInMeters: 400}, // central hospital, larger radius

	// Colleges and universities
	{ID: "c1", Name: "Mohanlal Sukhadia University", Type: domain.ZoneTypeCollege, Lat: 24.5943688, Lng: 73.7316634, RadiusInMeters: 500}, // large campus
	{ID: "c2", Name: "Pacific Institute of Technology", Type: domain.ZoneTypeCollege, Lat: 24.5991548, Lng: 73.7764558, RadiusInMeters: 400},
	{ID: "c3", Name: "Rajasthan College of Agriculture", Type: domain.ZoneTypeCollege, Lat: 24.5826908, Lng: 73.7042005, RadiusInMeters: 300},
	{ID: "c4", Name: "IIM Udaipur", Type: domain.ZoneTypeCollege, Lat: 24.5360, Lng: 73.6652, RadiusInMeters: 500},
}

// Zones exposes the catalog for display and tests.
func Zones() []domain.RiskZone {
	return zones
}
