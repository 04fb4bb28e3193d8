package postgres

import (
	"database/sql"
	"time"

	"scamwatch/pkg/domain"

	"github.com/google/uuid"
)

type PgReport struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	ScamType     string         `db:"scam_type"`
	PhoneNumber  sql.NullString `db:"phone_number"`
	EmailAddress sql.NullString `db:"email_address"`
	BusinessName sql.NullString `db:"business_name"`
	Description  string         `db:"description"`

	City    sql.NullString `db:"city"`
	Region  sql.NullString `db:"region"`
	Country sql.NullString `db:"country"`

	ProofDocument sql.NullString `db:"proof_document"`

	Verified    bool          `db:"verified"     goqu:"skipinsert"`
	VerifiedBy  uuid.NullUUID `db:"verified_by"  goqu:"skipinsert"`
	Published   bool          `db:"published"    goqu:"skipinsert"`
	PublishedBy uuid.NullUUID `db:"published_by" goqu:"skipinsert"`

	ReportedAt time.Time    `db:"reported_at"`
	CreatedAt  time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt  sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt  sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgReport) ToDomain() *domain.ScamReport {
	return &domain.ScamReport{
		ID:            domain.ReportID(p.ID),
		UserID:        domain.UserID(p.UserID),
		Type:          domain.ScamType(p.ScamType),
		PhoneNumber:   p.PhoneNumber.String,
		EmailAddress:  p.EmailAddress.String,
		BusinessName:  p.BusinessName.String,
		Description:   p.Description,
		City:          p.City.String,
		Region:        p.Region.String,
		Country:       p.Country.String,
		ProofDocument: p.ProofDocument.String,
		Verified:      p.Verified,
		VerifiedBy:    domain.UserID(p.VerifiedBy.UUID),
		Published:     p.Published,
		PublishedBy:   domain.UserID(p.PublishedBy.UUID),
		ReportedAt:    p.ReportedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		DeletedAt:     p.DeletedAt.Time,
	}
}

func (p *PgReport) FromDomain(report domain.ScamReport) {
	*p = PgReport{
		ID:            uuid.UUID(report.ID),
		UserID:        uuid.UUID(report.UserID),
		ScamType:      string(report.Type),
		PhoneNumber:   nullString(report.PhoneNumber),
		EmailAddress:  nullString(report.EmailAddress),
		BusinessName:  nullString(report.BusinessName),
		Description:   report.Description,
		City:          nullString(report.City),
		Region:        nullString(report.Region),
		Country:       nullString(report.Country),
		ProofDocument: nullString(report.ProofDocument),
		Verified:      report.Verified,
		VerifiedBy:    nullUUID(uuid.UUID(report.VerifiedBy)),
		Published:     report.Published,
		PublishedBy:   nullUUID(uuid.UUID(report.PublishedBy)),
		ReportedAt:    report.ReportedAt,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     nullTime(report.UpdatedAt),
		DeletedAt:     nullTime(report.DeletedAt),
	}
}

type PgConsolidatedScam struct {
	ID          uuid.UUID `db:"id" goqu:"skipinsert"`
	ScamType    string    `db:"scam_type"`
	Identifier  string    `db:"identifier"`
	ReportCount int       `db:"report_count"`
	FirstSeen   time.Time `db:"first_seen"`
	LastSeen    time.Time `db:"last_seen"`
	Verified    bool      `db:"verified" goqu:"skipinsert"`

	RiskScore  sql.NullInt64  `db:"risk_score"  goqu:"skipinsert"`
	RiskStatus sql.NullString `db:"risk_status" goqu:"skipinsert"`
	EnrichedAt sql.NullTime   `db:"enriched_at" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgConsolidatedScam) ToDomain() *domain.ConsolidatedScam {
	return &domain.ConsolidatedScam{
		ID:          domain.ConsolidatedID(p.ID),
		Type:        domain.ScamType(p.ScamType),
		Identifier:  p.Identifier,
		ReportCount: p.ReportCount,
		FirstSeen:   p.FirstSeen,
		LastSeen:    p.LastSeen,
		Verified:    p.Verified,
		RiskScore:   int(p.RiskScore.Int64),
		RiskStatus:  domain.LookupStatus(p.RiskStatus.String),
		EnrichedAt:  p.EnrichedAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

type PgReportConsolidation struct {
	ReportID       uuid.UUID `db:"report_id"`
	ConsolidatedID uuid.UUID `db:"consolidated_id"`
	CreatedAt      time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgReportConsolidation) ToDomain() *domain.ReportConsolidation {
	return &domain.ReportConsolidation{
		ReportID:       domain.ReportID(p.ReportID),
		ConsolidatedID: domain.ConsolidatedID(p.ConsolidatedID),
		CreatedAt:      p.CreatedAt,
	}
}

type PgProviderConfig struct {
	ID               uuid.UUID `db:"id" goqu:"skipinsert"`
	Name             string    `db:"name"`
	LookupType       string    `db:"lookup_type"`
	BaseURL          string    `db:"base_url"`
	APIKey           string    `db:"api_key"`
	Enabled          bool      `db:"enabled"`
	ParameterMapping string    `db:"parameter_mapping"`
	Headers          string    `db:"headers"`
	TimeoutSeconds   int       `db:"timeout_seconds"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProviderConfig) ToDomain() *domain.ProviderConfig {
	return &domain.ProviderConfig{
		ID:               domain.ProviderConfigID(p.ID),
		Name:             p.Name,
		LookupType:       domain.LookupType(p.LookupType),
		BaseURL:          p.BaseURL,
		APIKey:           p.APIKey,
		Enabled:          p.Enabled,
		ParameterMapping: p.ParameterMapping,
		Headers:          p.Headers,
		Timeout:          time.Duration(p.TimeoutSeconds) * time.Second,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}
}

func (p *PgProviderConfig) FromDomain(cfg domain.ProviderConfig) {
	*p = PgProviderConfig{
		ID:               uuid.UUID(cfg.ID),
		Name:             cfg.Name,
		LookupType:       string(cfg.LookupType),
		BaseURL:          cfg.BaseURL,
		APIKey:           cfg.APIKey,
		Enabled:          cfg.Enabled,
		ParameterMapping: cfg.ParameterMapping,
		Headers:          cfg.Headers,
		TimeoutSeconds:   int(cfg.CallTimeout() / time.Second),
		CreatedAt:        cfg.CreatedAt,
		UpdatedAt:        nullTime(cfg.UpdatedAt),
		DeletedAt:        nullTime(cfg.DeletedAt),
	}
}

type PgChecklistItem struct {
	ID          uuid.UUID `db:"id" goqu:"skipinsert"`
	Slug        string    `db:"slug"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	SortOrder   int       `db:"sort_order"`
}

func (p *PgChecklistItem) ToDomain() domain.ChecklistItem {
	return domain.ChecklistItem{
		ID:          domain.ChecklistItemID(p.ID),
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		SortOrder:   p.SortOrder,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func domainReportsToPg(reports []domain.ScamReport) []PgReport {
	out := make([]PgReport, len(reports))
	for i := range out {
		out[i].FromDomain(reports[i])
	}

	return out
}

func pgReportsToDomain(reports []PgReport) []domain.ScamReport {
	out := make([]domain.ScamReport, 0, len(reports))
	for i := range reports {
		out = append(out, *reports[i].ToDomain())
	}

	return out
}
