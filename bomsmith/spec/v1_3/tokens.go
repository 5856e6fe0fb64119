package v1_3

import (
	"github.com/allisonsierra/bomsmith/bomsmith/model"
	"github.com/allisonsierra/bomsmith/bomsmith/spec/internal/wireutil"
)

var classifications = wireutil.NewTokenTable(map[model.Classification]string{
	model.ApplicationClassification:     "application",
	model.FrameworkClassification:       "framework",
	model.LibraryClassification:         "library",
	model.ContainerClassification:       "container",
	model.OperatingSystemClassification: "operating-system",
	model.DeviceClassification:          "device",
	model.FirmwareClassification:        "firmware",
	model.FileClassification:            "file",
})

var scopes = wireutil.NewTokenTable(map[model.Scope]string{
	model.RequiredScope: "required",
	model.OptionalScope: "optional",
	model.ExcludedScope: "excluded",
})

var hashAlgorithms = wireutil.NewTokenTable(map[model.HashAlgorithm]string{
	model.MD5:         "MD5",
	model.SHA1:        "SHA-1",
	model.SHA256:      "SHA-256",
	model.SHA384:      "SHA-384",
	model.SHA512:      "SHA-512",
	model.SHA3_256:    "SHA3-256",
	model.SHA3_384:    "SHA3-384",
	model.SHA3_512:    "SHA3-512",
	model.BLAKE2b_256: "BLAKE2b-256",
	model.BLAKE2b_384: "BLAKE2b-384",
	model.BLAKE2b_512: "BLAKE2b-512",
	model.BLAKE3:      "BLAKE3",
})

var externalReferenceTypes = wireutil.NewTokenTable(map[model.ExternalReferenceType]string{
	model.VCSReference:           "vcs",
	model.IssueTrackerReference:  "issue-tracker",
	model.WebsiteReference:       "website",
	model.AdvisoriesReference:    "advisories",
	model.BOMDocumentReference:   "bom",
	model.MailingListReference:   "mailing-list",
	model.SocialReference:        "social",
	model.ChatReference:          "chat",
	model.DocumentationReference: "documentation",
	model.SupportReference:       "support",
	model.DistributionReference:  "distribution",
	model.LicenseReference:       "license",
	model.BuildMetaReference:     "build-meta",
	model.BuildSystemReference:   "build-system",
	model.OtherReference:         "other",
})

var aggregateTypes = wireutil.NewTokenTable(map[model.AggregateType]string{
	model.CompleteAggregate:                 "complete",
	model.IncompleteAggregate:               "incomplete",
	model.IncompleteFirstPartyOnlyAggregate: "incomplete_first_party_only",
	model.IncompleteThirdPartyOnlyAggregate: "incomplete_third_party_only",
	model.UnknownAggregate:                  "unknown",
	model.NotSpecifiedAggregate:             "not_specified",
})

var dataFlowTypes = wireutil.NewTokenTable(map[model.DataFlowType]string{
	model.InboundDataFlow:       "inbound",
	model.OutboundDataFlow:      "outbound",
	model.BiDirectionalDataFlow: "bi-directional",
	model.UnknownDataFlow:       "unknown",
})

var patchClassifications = wireutil.NewTokenTable(map[model.PatchClassification]string{
	model.UnofficialPatch: "unofficial",
	model.MonkeyPatch:     "monkey",
	model.BackportPatch:   "backport",
	model.CherryPickPatch: "cherry-pick",
})

var issueClassifications = wireutil.NewTokenTable(map[model.IssueClassification]string{
	model.DefectIssue:      "defect",
	model.EnhancementIssue: "enhancement",
	model.SecurityIssue:    "security",
})
