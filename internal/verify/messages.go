package verify

import "fmt"

// analysisMessages maps complaint categories to the finding reported after a
// successful scan. Same first-match-table approach as the intake classifier,
// scoped to the categories the proof reviewer sees most.
var analysisMessages = map[string]string{
	"Pothole":                  "Surface integrity restored. No potholes detected. The repair quality meets the municipal standards",
	"Road Damage":              "Road surface re-laid and load-bearing integrity confirmed. The repair quality meets the municipal standards",
	"Garbage Accumulation":     "Area cleared of accumulated waste. No residual debris detected. Sanitation standards restored",
	"Overflowing Dustbin":      "Bin emptied and surrounding area cleaned. Collection point restored to sanitary condition",
	"Street Light Not Working": "Luminaire operational and light output within specification. Public lighting restored",
	"Drainage Blockage":        "Drain channel cleared and water flow re-established. No standing water detected",
	"Water Pipeline Leakage":   "Pipeline sealed and pressure stable. No further leakage detected at the reported point",
	"Open Manhole":             "Cover reinstated and secured. Access point no longer presents a hazard",
	"Fallen Tree":              "Obstruction removed and right of way cleared. No residual debris detected",
}

const genericAnalysis = "Reported issue no longer visible at the site. The remediation meets the municipal standards"

// analysisFor composes the human-readable verification finding.
func analysisFor(category string, confidence int) string {
	msg, ok := analysisMessages[category]
	if !ok {
		msg = genericAnalysis
	}
	return fmt.Sprintf("%s with a %d%% confidence score.", msg, confidence)
}
