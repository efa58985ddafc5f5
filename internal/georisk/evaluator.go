package georisk

import (
	"fmt"

	"github.com/civiclens/report-service/internal/domain"
)

const (
	scoreCritical = 100
	scoreNormal   = 10
)

// Evaluate grades a submission point against the zone catalog. The first
// zone whose radius contains the point wins; a match escalates the
// submission to CRITICAL and carries the zone identity for display.
// Deterministic and total.
func Evaluate(lat, lng float64) domain.RiskContext {
	for _, zone := range zones {
		if Distance(lat, lng, zone.Lat, zone.Lng) <= zone.RadiusInMeters {
			return domain.RiskContext{
				Level:    domain.RiskLevelCritical,
				Reason:   fmt.Sprintf("%s Zone Detected: %s", zone.Type, zone.Name),
				Score:    scoreCritical,
				ZoneName: zone.Name,
				ZoneType: zone.Type,
			}
		}
	}
	return domain.RiskContext{
		Level:  domain.RiskLevelNormal,
		Reason: "Standard Zone",
		Score:  scoreNormal,
	}
}
