package models

// Target is implemented by every scannable asset kind. Findings reference
// targets by bare id, so the concrete kind is recovered from the owning
// scanner type rather than stored on the finding itself.
type Target interface {
	TargetID() string
	ProjectRef() string
	Deleted() bool
}

type Domain struct {
	TargetDomainID string `gorm:"column:target_domain_id;primaryKey;type:varchar(36)" json:"target_domain_id"`
	ProjectID      string `gorm:"column:project_id;type:varchar(36);index" json:"project_id"`
	DomainName     string `json:"domain_name"`
	Scheme         string `json:"scheme"`
	IsDeleted      bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt      int64  `json:"deleted_at"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

func (d *Domain) TargetID() string   { return d.TargetDomainID }
func (d *Domain) ProjectRef() string { return d.ProjectID }
func (d *Domain) Deleted() bool      { return d.IsDeleted }

type Repository struct {
	TargetRepositoryID string `gorm:"column:target_repository_id;primaryKey;type:varchar(36)" json:"target_repository_id"`
	ProjectID          string `gorm:"column:project_id;type:varchar(36);index" json:"project_id"`
	RepoURL            string `json:"repo_url"`
	Branch             string `json:"branch"`
	IsDeleted          bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt          int64  `json:"deleted_at"`
	CreatedAt          int64  `json:"created_at"`
	UpdatedAt          int64  `json:"updated_at"`
}

func (r *Repository) TargetID() string   { return r.TargetRepositoryID }
func (r *Repository) ProjectRef() string { return r.ProjectID }
func (r *Repository) Deleted() bool      { return r.IsDeleted }

type Contract struct {
	TargetContractID string `gorm:"column:target_contract_id;primaryKey;type:varchar(36)" json:"target_contract_id"`
	ProjectID        string `gorm:"column:project_id;type:varchar(36);index" json:"project_id"`
	ContractAddress  string `json:"contract_address"`
	Network          string `json:"network"`
	IsDeleted        bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt        int64  `json:"deleted_at"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
}

func (c *Contract) TargetID() string   { return c.TargetContractID }
func (c *Contract) ProjectRef() string { return c.ProjectID }
func (c *Contract) Deleted() bool      { return c.IsDeleted }

// CloudAccount covers both Azure and Google accounts; Provider selects the
// concrete integration.
type CloudAccount struct {
	TargetCloudAccountID string `gorm:"column:target_cloud_account_id;primaryKey;type:varchar(36)" json:"target_cloud_account_id"`
	ProjectID            string `gorm:"column:project_id;type:varchar(36);index" json:"project_id"`
	Provider             string `json:"provider"`
	AccountIdentifier    string `json:"account_identifier"`
	Region               string `json:"region"`
	IsDeleted            bool   `gorm:"column:isdeleted" json:"isdeleted"`
	DeletedAt            int64  `json:"deleted_at"`
	CreatedAt            int64  `json:"created_at"`
	UpdatedAt            int64  `json:"updated_at"`
}

func (c *CloudAccount) TargetID() string   { return c.TargetCloudAccountID }
func (c *CloudAccount) ProjectRef() string { return c.ProjectID }
func (c *CloudAccount) Deleted() bool      { return c.IsDeleted }

const (
	CloudProviderAzure  = "azure"
	CloudProviderGoogle = "google"
)
