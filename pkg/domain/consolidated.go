package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConsolidatedID uniquely identifies a consolidated scam aggregate.
type ConsolidatedID uuid.UUID

// ConsolidatedScam is the aggregate record grouping every report of the same
// identifier. At most one aggregate exists per (Type, lower(Identifier)) pair;
// the storage layer enforces this with a case-normalized unique index.
type ConsolidatedScam struct {
	// ID is the unique identifier of the aggregate.
	ID ConsolidatedID `json:"id"`
	// Type is the scam type shared by all folded reports.
	Type ScamType `json:"scamType"`
	// Identifier is the normalized identifying value.
	Identifier string `json:"identifier"`

	// ReportCount is the number of reports folded into this aggregate.
	ReportCount int `json:"reportCount"`
	// FirstSeen is the submission time of the earliest folded report.
	FirstSeen time.Time `json:"firstSeen"`
	// LastSeen is the submission time of the most recent folded report.
	LastSeen time.Time `json:"lastSeen"`
	// Verified is set once any folded report has been verified by an
	// administrator. The flag is one-way; un-verifying a report never clears it.
	Verified bool `json:"verified"`

	// RiskScore and RiskStatus hold the latest background enrichment snapshot
	// from the lookup providers. Zero values mean the aggregate was never
	// enriched; EnrichedAt records when the snapshot was taken.
	RiskScore  int          `json:"riskScore,omitempty"`
	RiskStatus LookupStatus `json:"riskStatus,omitempty"`
	EnrichedAt time.Time    `json:"enrichedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReportConsolidation links one report to the aggregate it was folded into.
// Exactly one link is created per consolidated report.
type ReportConsolidation struct {
	ReportID       ReportID       `json:"reportId"`
	ConsolidatedID ConsolidatedID `json:"consolidatedId"`
	CreatedAt      time.Time      `json:"createdAt"`
}
