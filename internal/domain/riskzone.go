package domain

// ZoneType categorizes sensitive-location catchments.
type ZoneType string

const (
	ZoneTypeSchool   ZoneType = "School"
	ZoneTypeHospital ZoneType = "Hospital"
	ZoneTypeCollege  ZoneType = "College"
)

// RiskZone is static reference data describing a sensitive catchment that
// escalates complaint urgency when a submission falls inside it.
type RiskZone struct {
	ID             string
	Name           string
	Type           ZoneType
	Lat            float64
	Lng            float64
	RadiusInMeters float64
}

// RiskLevel grades proximity risk for a submission point.
type RiskLevel string

const (
	RiskLevelCritical RiskLevel = "CRITICAL"
	RiskLevelNormal   RiskLevel = "NORMAL"
)

// RiskContext is the per-submission outcome of risk-zone evaluation.
type RiskContext struct {
	Level    RiskLevel
	Reason   string
	Score    int
	ZoneName string
	ZoneType ZoneType
}
