package models

// FixRecommendation caches one AI-generated remediation per finding. Once
// AIFix is set the row is never regenerated; a missing row means the
// recommendation has not been computed yet.
type FixRecommendation struct {
	FixRecommendationID string `gorm:"column:fix_recommendation_id;primaryKey;type:varchar(36)" json:"fix_recommendation_id"`
	FindingID           string `gorm:"column:finding_id;type:varchar(36);index" json:"finding_id"`
	AIFix               string `gorm:"column:ai_fix;type:text" json:"ai_fix"`
	Model               string `json:"model"`
	CreatedAt           int64  `json:"created_at"`
}
