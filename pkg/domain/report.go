package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a scam report.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ReportID uuid.UUID

// ScamType classifies what kind of identifier a report is about.
type ScamType string

const (
	// ScamTypePhone marks reports about a phone number.
	ScamTypePhone ScamType = "phone"
	// ScamTypeEmail marks reports about an email address.
	ScamTypeEmail ScamType = "email"
	// ScamTypeBusiness marks reports about a business name.
	ScamTypeBusiness ScamType = "business"
)

// ScamReport is a single user-submitted scam incident. Exactly one of the
// identifying fields (PhoneNumber, EmailAddress, BusinessName) is expected to
// be set according to Type; when the matching field is empty the report is
// still accepted but never consolidated.
type ScamReport struct {
	// ID is the unique identifier of the report.
	ID ReportID `json:"id"`
	// UserID is the identifier of the user who submitted the report.
	UserID UserID `json:"userId"`

	// Type declares which identifying field names the scam.
	Type ScamType `json:"scamType"`
	// PhoneNumber is the reported phone number for phone scams.
	PhoneNumber string `json:"phoneNumber,omitempty"`
	// EmailAddress is the reported email address for email scams.
	EmailAddress string `json:"emailAddress,omitempty"`
	// BusinessName is the reported business name for business scams.
	BusinessName string `json:"businessName,omitempty"`
	// Description is the free-text account of the incident.
	Description string `json:"description"`

	// City, Region and Country describe where the incident happened.
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`

	// ProofDocument is an opaque reference to uploaded supporting evidence.
	// Upload storage lives outside this service.
	ProofDocument string `json:"proofDocument,omitempty"`

	// Verified is set by an administrator after reviewing the report.
	Verified bool `json:"verified"`
	// VerifiedBy is the administrator that last changed the verification flag.
	VerifiedBy UserID `json:"-"`
	// Published controls whether the report is visible in public listings.
	Published bool `json:"published"`
	// PublishedBy is the administrator that last changed the publication flag.
	PublishedBy UserID `json:"-"`

	// ReportedAt is the submission time as recorded by the service.
	ReportedAt time.Time `json:"reportedAt"`
	// CreatedAt is when the record was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the record was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// Identifier returns the type-specific identifying value of the report and
// whether one is present. The value is returned as submitted; normalization
// is the consolidation engine's concern.
func (r ScamReport) Identifier() (string, bool) {
	var v string
	switch r.Type {
	case ScamTypePhone:
		v = r.PhoneNumber
	case ScamTypeEmail:
		v = r.EmailAddress
	case ScamTypeBusiness:
		v = r.BusinessName
	default:
		return "", false
	}
	if v == "" {
		return "", false
	}

	return v, true
}
