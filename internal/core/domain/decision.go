package domain

import "time"

// Gate names used in audit records and metrics.
const (
	GateSession = "session"
	GateAdmin   = "admin"
)

// GateRecord is one access-gate outcome, kept for the audit trail.
type GateRecord struct {
	ProfileID string    `json:"profile_id" bson:"profile_id"`
	Gate      string    `json:"gate" bson:"gate"`
	Decision  string    `json:"decision" bson:"decision"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Method    string    `json:"method" bson:"method"`
	Path      string    `json:"path" bson:"path"`
	UserID    int64     `json:"user_id,omitempty" bson:"user_id,omitempty"`
	At        time.Time `json:"at" bson:"at"`
}

// AuditFilter narrows a listing of recent gate records. Empty fields match
// everything.
type AuditFilter struct {
	ProfileID string
	Gate      string
	Decision  string
	Limit     int
}
