package dto

import "github.com/spec-kit/samadhan-service/internal/domain"

// LocationPayload mirrors the persisted location shape.
type LocationPayload struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// CreateComplaintRequest describes a submission payload.
type CreateComplaintRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Priority    string           `json:"priority"`
	Location    *LocationPayload `json:"location"`
	// ConfirmDuplicate files the complaint even when nearby duplicates
	// were reported by a previous attempt.
	ConfirmDuplicate bool `json:"confirmDuplicate"`
}

// CheckDuplicatesRequest describes a duplicate-preview query.
type CheckDuplicatesRequest struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Category string  `json:"category"`
}

// UpdateStatusRequest carries an admin status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AllocateDepartmentRequest carries an admin department allocation.
type AllocateDepartmentRequest struct {
	Department string `json:"department"`
}

// ComplaintResponse preserves the original record field names so existing
// stored documents remain readable by any replacement backend.
type ComplaintResponse struct {
	ID                      string           `json:"id"`
	Title                   string           `json:"title"`
	Description             string           `json:"description"`
	Category                string           `json:"category"`
	Priority                string           `json:"priority"`
	Status                  string           `json:"status"`
	CreatedAt               int64            `json:"createdAt"`
	Upvotes                 int              `json:"upvotes"`
	UpvotedBy               []string         `json:"upvotedBy"`
	AssignedDepartment      *string          `json:"assignedDepartment,omitempty"`
	UserID                  *string          `json:"userId,omitempty"`
	Location                *LocationPayload `json:"location,omitempty"`
	EstimatedYearsMin       *int             `json:"estimatedYearsMin,omitempty"`
	EstimatedYearsMax       *int             `json:"estimatedYearsMax,omitempty"`
	EstimatedResolutionFrom *int64           `json:"estimatedResolutionFrom,omitempty"`
	EstimatedResolutionTo   *int64           `json:"estimatedResolutionTo,omitempty"`
}

// SubmitComplaintResponse reports either the created complaint or the
// duplicate candidates that withheld creation.
type SubmitComplaintResponse struct {
	Complaint              *ComplaintResponse  `json:"complaint,omitempty"`
	Duplicates             []ComplaintResponse `json:"duplicates,omitempty"`
	DuplicateCheckDegraded bool                `json:"duplicateCheckDegraded,omitempty"`
	Warning                string              `json:"warning,omitempty"`
}

// UpvoteResponse reports the new counter after a successful upvote.
type UpvoteResponse struct {
	ComplaintID string `json:"complaintId"`
	Upvotes     int    `json:"upvotes"`
}

// FromComplaint converts a domain complaint to its wire shape.
func FromComplaint(c *domain.Complaint) ComplaintResponse {
	resp := ComplaintResponse{
		ID:                      c.ID,
		Title:                   c.Title,
		Description:             c.Description,
		Category:                string(c.Category),
		Priority:                string(c.Priority),
		Status:                  string(c.Status),
		CreatedAt:               c.CreatedAt,
		Upvotes:                 c.Upvotes,
		UpvotedBy:               c.UpvotedBy,
		AssignedDepartment:      c.AssignedDepartment,
		UserID:                  c.OwnerID,
		EstimatedYearsMin:       c.EstimatedYearsMin,
		EstimatedYearsMax:       c.EstimatedYearsMax,
		EstimatedResolutionFrom: c.EstimatedResolutionFrom,
		EstimatedResolutionTo:   c.EstimatedResolutionTo,
	}
	if resp.UpvotedBy == nil {
		resp.UpvotedBy = []string{}
	}
	if c.Location != nil {
		resp.Location = &LocationPayload{
			Lat:     c.Location.Lat,
			Lng:     c.Location.Lng,
			Address: c.Location.Address,
		}
	}
	return resp
}

// FromComplaints converts a slice of domain complaints.
func FromComplaints(complaints []domain.Complaint) []ComplaintResponse {
	items := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, FromComplaint(&complaints[i]))
	}
	return items
}
