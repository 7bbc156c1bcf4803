package models

// Finding is the canonical, scanner-agnostic record of a single issue. It
// references its target and its scanner-specific detail row by bare id: the
// target's kind comes from the owning scanner type, the detail's kind from
// ExtendedFindingDetailsName. Findings are soft-deleted, never removed.
type Finding struct {
	FindingID                  string `gorm:"column:finding_id;primaryKey;type:varchar(36)" json:"finding_id"`
	ProjectID                  string `gorm:"column:project_id;type:varchar(36);index" json:"project_id"`
	TargetID                   string `gorm:"column:target_id;type:varchar(36);index" json:"target_id"`
	ScannerTypeID              string `gorm:"column:scanner_type_id;type:varchar(36)" json:"scanner_type_id"`
	ExtendedFindingDetailsName string `gorm:"column:extended_finding_details_name" json:"extended_finding_details_name"`
	ExtendedFindingDetailsID   string `gorm:"column:extended_finding_details_id;type:varchar(36)" json:"extended_finding_details_id"`
	Title                      string `json:"title"`
	Severity                   string `json:"severity"`
	Status                     string `json:"status"`
	FixRecommendationID        string `gorm:"column:fix_recommendation_id;type:varchar(36)" json:"fix_recommendation_id"`
	IsDeleted                  bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt                  int64  `json:"deleted_at"`
	CreatedAt                  int64  `json:"created_at"`
	UpdatedAt                  int64  `json:"updated_at"`
}

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
	SeverityInfo     = "info"
)

const (
	FindingStatusOpen     = "open"
	FindingStatusTriaged  = "triaged"
	FindingStatusResolved = "resolved"
	FindingStatusIgnored  = "ignored"
)
