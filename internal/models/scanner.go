package models

// ScannerType describes a scanner integration. ScanTargetType decides which
// target kind the scanner runs against and is the key findings use to recover
// their target's concrete kind.
type ScannerType struct {
	ScannerTypeID  string `gorm:"column:scanner_type_id;primaryKey;type:varchar(36)" json:"scanner_type_id"`
	Name           string `gorm:"uniqueIndex" json:"name"`
	ScanTargetType string `json:"scan_target_type"`
	Description    string `json:"description"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}
