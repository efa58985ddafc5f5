package domain

// ComplaintStatus enumerates workflow stages for a complaint.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// Urgency enumerates triage severity tiers, distinct from status.
type Urgency string

const (
	UrgencyCritical Urgency = "Critical"
	UrgencyHigh     Urgency = "High"
	UrgencyMedium   Urgency = "Medium"
	UrgencyLow      Urgency = "Low"
)

// Location is a WGS84 point in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Complaint is the aggregate for citizen-submitted civic issues.
type Complaint struct {
	ID           string
	OwnerID      string
	ImageURL     string
	Description  string
	Category     string
	Department   string
	Urgency      Urgency
	Status       ComplaintStatus
	Location     Location
	CreatedAt    int64 // epoch milliseconds
	SupportCount int
	Supporters   []string
	Analysis     string
	Risk         RiskContext
}

// SupportedBy reports whether the user already upvoted this complaint.
func (c *Complaint) SupportedBy(userID string) bool {
	for _, id := range c.Supporters {
		if id == userID {
			return true
		}
	}
	return false
}
