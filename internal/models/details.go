package models

// Scanner detail rows hold the raw, scanner-shaped half of a finding. Each
// scanner integration gets its own table and identifying column; findings
// point at them through the (details_name, details_id) pair.

type ZapDetail struct {
	ZapDetailID string `gorm:"column:zap_detail_id;primaryKey;type:varchar(36)" json:"zap_detail_id"`
	AlertName   string `json:"alert_name"`
	RiskDesc    string `json:"risk_desc"`
	URL         string `json:"url"`
	Param       string `json:"param"`
	Evidence    string `json:"evidence"`
	Solution    string `json:"solution"`
	IsDeleted   bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt   int64  `json:"deleted_at"`
	CreatedAt   int64  `json:"created_at"`
}

type WapitiDetail struct {
	WapitiDetailID string `gorm:"column:wapiti_detail_id;primaryKey;type:varchar(36)" json:"wapiti_detail_id"`
	Category       string `json:"category"`
	HTTPRequest    string `json:"http_request"`
	CurlCommand    string `json:"curl_command"`
	Info           string `json:"info"`
	IsDeleted      bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt      int64  `json:"deleted_at"`
	CreatedAt      int64  `json:"created_at"`
}

type TrivyDetail struct {
	TrivyDetailID    string `gorm:"column:trivy_detail_id;primaryKey;type:varchar(36)" json:"trivy_detail_id"`
	VulnerabilityID  string `json:"vulnerability_id"`
	PkgName          string `json:"pkg_name"`
	InstalledVersion string `json:"installed_version"`
	FixedVersion     string `json:"fixed_version"`
	PrimaryURL       string `json:"primary_url"`
	IsDeleted        bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt        int64  `json:"deleted_at"`
	CreatedAt        int64  `json:"created_at"`
}

type SecretDetail struct {
	SecretDetailID string `gorm:"column:secret_detail_id;primaryKey;type:varchar(36)" json:"secret_detail_id"`
	RuleID         string `json:"rule_id"`
	FilePath       string `json:"file_path"`
	LineNumber     int    `json:"line_number"`
	Match          string `json:"match"`
	Commit         string `json:"commit"`
	IsDeleted      bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt      int64  `json:"deleted_at"`
	CreatedAt      int64  `json:"created_at"`
}

type SlitherDetail struct {
	SlitherDetailID string `gorm:"column:slither_detail_id;primaryKey;type:varchar(36)" json:"slither_detail_id"`
	CheckID         string `json:"check_id"`
	Impact          string `json:"impact"`
	Confidence      string `json:"confidence"`
	SourceMapping   string `json:"source_mapping"`
	Description     string `json:"description"`
	IsDeleted       bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt       int64  `json:"deleted_at"`
	CreatedAt       int64  `json:"created_at"`
}

type CloudAzureDetail struct {
	CloudAzureDetailID string `gorm:"column:cloud_azure_detail_id;primaryKey;type:varchar(36)" json:"cloud_azure_detail_id"`
	ResourceID         string `json:"resource_id"`
	PolicyName         string `json:"policy_name"`
	ComplianceState    string `json:"compliance_state"`
	Recommendation     string `json:"recommendation"`
	IsDeleted          bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt          int64  `json:"deleted_at"`
	CreatedAt          int64  `json:"created_at"`
}

type CloudGoogleDetail struct {
	CloudGoogleDetailID string `gorm:"column:cloud_google_detail_id;primaryKey;type:varchar(36)" json:"cloud_google_detail_id"`
	ResourceName        string `json:"resource_name"`
	FindingClass        string `json:"finding_class"`
	Category            string `json:"category"`
	ExternalURI         string `json:"external_uri"`
	IsDeleted           bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt           int64  `json:"deleted_at"`
	CreatedAt           int64  `json:"created_at"`
}
