package handlers

import "encoding/json"

type AddDomainRequest struct {
	ProjectID  string `json:"project_id" binding:"required"`
	DomainName string `json:"domain_name" binding:"required"`
	Scheme     string `json:"scheme"`
}

type AddRepositoryRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	RepoURL   string `json:"repo_url" binding:"required"`
	Branch    string `json:"branch"`
}

type AddContractRequest struct {
	ProjectID       string `json:"project_id" binding:"required"`
	ContractAddress string `json:"contract_address" binding:"required"`
	Network         string `json:"network"`
}

type AddCloudAccountRequest struct {
	ProjectID         string `json:"project_id" binding:"required"`
	Provider          string `json:"provider" binding:"required"`
	AccountIdentifier string `json:"account_identifier" binding:"required"`
	Region            string `json:"region"`
}

type AddTargetResponse struct {
	TargetID string `json:"target_id"`
}

type IngestFindingRequest struct {
	ProjectID     string          `json:"project_id" binding:"required"`
	TargetID      string          `json:"target_id" binding:"required"`
	ScannerTypeID string          `json:"scanner_type_id" binding:"required"`
	Title         string          `json:"title" binding:"required"`
	Severity      string          `json:"severity" binding:"required"`
	DetailsName   string          `json:"extended_finding_details_name" binding:"required"`
	Detail        json.RawMessage `json:"detail"`
}

type UpdateFindingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type FixRecommendationResponse struct {
	FindingID string `json:"finding_id"`
	AIFix     string `json:"ai_fix"`
}
