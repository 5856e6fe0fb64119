package model

type ExternalReferenceType int

const (
	UnknownExternalReferenceType ExternalReferenceType = iota
	VCSReference
	IssueTrackerReference
	WebsiteReference
	AdvisoriesReference
	BOMDocumentReference
	MailingListReference
	SocialReference
	ChatReference
	DocumentationReference
	SupportReference
	DistributionReference
	LicenseReference
	BuildMetaReference
	BuildSystemReference
	OtherReference
)

func (t ExternalReferenceType) IsValid() bool {
	return t > UnknownExternalReferenceType && t <= OtherReference
}
