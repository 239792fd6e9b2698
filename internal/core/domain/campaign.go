package domain

import "time"

// Campaign represents a calling campaign. It is owned by the campaign
// CRUD layer and consumed here read-only. Filters and StudentIDs together
// define the queue of contacts to call.
type Campaign struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Filters    []Filter  `json:"filters"`
	StudentIDs []string  `json:"student_ids"` // optional allow-list
	Survey     *Survey   `json:"survey,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Survey is the single-question survey asked during a call.
type Survey struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Filter is a field/operator/value predicate applied to contacts.
type Filter struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

// Filter operators. An unknown operator is treated as OpEq.
const (
	OpEq       = "="
	OpContains = "~"
	OpGt       = ">"
	OpGte      = ">="
	OpLt       = "<"
	OpLte      = "<="
)

// UnknownCampaignName is shown for a campaign whose record could not be
// resolved but whose id is known.
const UnknownCampaignName = "(unknown)"
