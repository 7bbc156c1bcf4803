// Package registry is the single source of truth for the closed sets of
// target kinds and scanner detail kinds. Everything that resolves a target or
// a detail row by tag goes through the descriptors defined here; nothing else
// in the codebase is allowed to compare tag strings directly.
package registry

import (
	"fmt"

	apperrors "scanvault/pkg/errors"
)

// ScanTargetType is the tag a scanner type carries to say which kind of
// target it runs against.
type ScanTargetType string

const (
	ScanTargetDomain ScanTargetType = "DOMAIN"
	ScanTargetRepo   ScanTargetType = "REPO"
	ScanTargetWeb3   ScanTargetType = "WEB3"
	ScanTargetCloud  ScanTargetType = "CLOUD"
)

// DetailKind is the tag a finding carries in extended_finding_details_name to
// say which detail table holds its raw scanner output.
type DetailKind string

const (
	DetailDomainZap        DetailKind = "DomainZap1"
	DetailDomainWapiti     DetailKind = "DomainWapiti1"
	DetailRepositoryTrivy  DetailKind = "RepositoryTrivy1"
	DetailRepositorySecret DetailKind = "RepositorySecret1"
	DetailContractSlither  DetailKind = "ContractSlither1"
	DetailCloudAzure       DetailKind = "CloudAzure1"
	DetailCloudGoogle      DetailKind = "CloudGoogle1"
)

// TargetDescriptor names the table and identifying column for one target kind.
type TargetDescriptor struct {
	Kind     ScanTargetType
	Table    string
	IDColumn string
}

// DetailDescriptor names the table and identifying column for one detail kind.
type DetailDescriptor struct {
	Kind     DetailKind
	Target   ScanTargetType
	Table    string
	IDColumn string
}

var scanTargetTypes = []ScanTargetType{
	ScanTargetDomain,
	ScanTargetRepo,
	ScanTargetWeb3,
	ScanTargetCloud,
}

var detailKinds = []DetailKind{
	DetailDomainZap,
	DetailDomainWapiti,
	DetailRepositoryTrivy,
	DetailRepositorySecret,
	DetailContractSlither,
	DetailCloudAzure,
	DetailCloudGoogle,
}

var targetDescriptors = map[ScanTargetType]TargetDescriptor{
	ScanTargetDomain: {Kind: ScanTargetDomain, Table: "domains", IDColumn: "target_domain_id"},
	ScanTargetRepo:   {Kind: ScanTargetRepo, Table: "repositories", IDColumn: "target_repository_id"},
	ScanTargetWeb3:   {Kind: ScanTargetWeb3, Table: "contracts", IDColumn: "target_contract_id"},
	ScanTargetCloud:  {Kind: ScanTargetCloud, Table: "cloud_accounts", IDColumn: "target_cloud_account_id"},
}

var detailDescriptors = map[DetailKind]DetailDescriptor{
	DetailDomainZap:        {Kind: DetailDomainZap, Target: ScanTargetDomain, Table: "zap_details", IDColumn: "zap_detail_id"},
	DetailDomainWapiti:     {Kind: DetailDomainWapiti, Target: ScanTargetDomain, Table: "wapiti_details", IDColumn: "wapiti_detail_id"},
	DetailRepositoryTrivy:  {Kind: DetailRepositoryTrivy, Target: ScanTargetRepo, Table: "trivy_details", IDColumn: "trivy_detail_id"},
	DetailRepositorySecret: {Kind: DetailRepositorySecret, Target: ScanTargetRepo, Table: "secret_details", IDColumn: "secret_detail_id"},
	DetailContractSlither:  {Kind: DetailContractSlither, Target: ScanTargetWeb3, Table: "slither_details", IDColumn: "slither_detail_id"},
	DetailCloudAzure:       {Kind: DetailCloudAzure, Target: ScanTargetCloud, Table: "cloud_azure_details", IDColumn: "cloud_azure_detail_id"},
	DetailCloudGoogle:      {Kind: DetailCloudGoogle, Target: ScanTargetCloud, Table: "cloud_google_details", IDColumn: "cloud_google_detail_id"},
}

// Validate checks that every enum value has a descriptor and every descriptor
// belongs to a known enum value. Run once at process start; a failure here is
// a build mistake, not a request error.
func Validate() error {
	for _, t := range scanTargetTypes {
		if _, ok := targetDescriptors[t]; !ok {
			return fmt.Errorf("registry: scan target type %q has no descriptor", t)
		}
	}
	if len(targetDescriptors) != len(scanTargetTypes) {
		return fmt.Errorf("registry: %d target descriptors for %d scan target types", len(targetDescriptors), len(scanTargetTypes))
	}
	for _, d := range detailKinds {
		desc, ok := detailDescriptors[d]
		if !ok {
			return fmt.Errorf("registry: detail kind %q has no descriptor", d)
		}
		if _, ok := targetDescriptors[desc.Target]; !ok {
			return fmt.Errorf("registry: detail kind %q maps to unknown target type %q", d, desc.Target)
		}
	}
	if len(detailDescriptors) != len(detailKinds) {
		return fmt.Errorf("registry: %d detail descriptors for %d detail kinds", len(detailDescriptors), len(detailKinds))
	}
	return nil
}

// ParseScanTargetType converts an untrusted string (request payload, database
// row) into a ScanTargetType.
func ParseScanTargetType(s string) (ScanTargetType, error) {
	t := ScanTargetType(s)
	if _, ok := targetDescriptors[t]; !ok {
		return "", apperrors.NewValidationError("scan_target_type", s, "unknown scan target type")
	}
	return t, nil
}

// ParseDetailKind converts an untrusted string into a DetailKind.
func ParseDetailKind(s string) (DetailKind, error) {
	d := DetailKind(s)
	if _, ok := detailDescriptors[d]; !ok {
		return "", apperrors.NewValidationError("extended_finding_details_name", s, "unknown detail kind")
	}
	return d, nil
}

// ResolveTargetKind is total over the closed ScanTargetType set.
func ResolveTargetKind(t ScanTargetType) (TargetDescriptor, error) {
	desc, ok := targetDescriptors[t]
	if !ok {
		return TargetDescriptor{}, apperrors.NewValidationError("scan_target_type", string(t), "unknown scan target type")
	}
	return desc, nil
}

// ResolveDetailKind is total over the closed DetailKind set.
func ResolveDetailKind(d DetailKind) (DetailDescriptor, error) {
	desc, ok := detailDescriptors[d]
	if !ok {
		return DetailDescriptor{}, apperrors.NewValidationError("extended_finding_details_name", string(d), "unknown detail kind")
	}
	return desc, nil
}

// ScanTargetTypes returns the closed set of scan target types.
func ScanTargetTypes() []ScanTargetType {
	out := make([]ScanTargetType, len(scanTargetTypes))
	copy(out, scanTargetTypes)
	return out
}

// DetailKinds returns the closed set of detail kinds.
func DetailKinds() []DetailKind {
	out := make([]DetailKind, len(detailKinds))
	copy(out, detailKinds)
	return out
}

// DetailKindsFor lists the detail kinds produced by scanners of the given
// target type.
func DetailKindsFor(t ScanTargetType) []DetailKind {
	var out []DetailKind
	for _, d := range detailKinds {
		if detailDescriptors[d].Target == t {
			out = append(out, d)
		}
	}
	return out
}
