package domain

// ComplaintStatus enumerates lifecycle states for complaints.
// Transitions are admin-driven only.
type ComplaintStatus string

const (
	ComplaintStatusSubmitted  ComplaintStatus = "submitted"
	ComplaintStatusOpen       ComplaintStatus = "open"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// ValidStatus reports whether s is a known complaint status.
func ValidStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintStatusSubmitted, ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// ComplaintCategory enumerates grievance categories.
type ComplaintCategory string

const (
	CategoryInfrastructure  ComplaintCategory = "infrastructure"
	CategoryHealthcare      ComplaintCategory = "healthcare"
	CategoryEducation       ComplaintCategory = "education"
	CategoryLawAndOrder     ComplaintCategory = "law-and-order"
	CategoryCorruption      ComplaintCategory = "corruption"
	CategoryDigitalServices ComplaintCategory = "digital-services"
	CategoryEmployment      ComplaintCategory = "employment"
	CategoryWelfareSchemes  ComplaintCategory = "welfare-schemes"
	CategoryOther           ComplaintCategory = "other"
)

// ComplaintPriority enumerates urgency levels.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
	PriorityUrgent ComplaintPriority = "urgent"
)

// Location is an optional geotag on a complaint. A complaint without a
// location cannot participate in duplicate detection.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

// Complaint is the aggregate for citizen grievances.
//
// Upvotes is denormalized from UpvotedBy and must always equal its
// cardinality; both fields only change through the atomic upvote path.
// Estimate fields are computed once at creation and never recomputed.
type Complaint struct {
	ID                      string
	Title                   string
	Description             string
	Category                ComplaintCategory
	Priority                ComplaintPriority
	Status                  ComplaintStatus
	OwnerID                 *string
	Location                *Location
	Upvotes                 int
	UpvotedBy               []string
	AssignedDepartment      *string
	EstimatedYearsMin       *int
	EstimatedYearsMax       *int
	EstimatedResolutionFrom *int64
	EstimatedResolutionTo   *int64
	CreatedAt               int64
}

// HasLocation reports whether the complaint carries a usable geotag.
func (c *Complaint) HasLocation() bool {
	return c.Location != nil
}

// UpvotedByIdentity reports whether the identity already upvoted.
func (c *Complaint) UpvotedByIdentity(identity string) bool {
	for _, id := range c.UpvotedBy {
		if id == identity {
			return true
		}
	}
	return false
}
