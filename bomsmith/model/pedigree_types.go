package model

type PatchClassification int

const (
	UnknownPatchClassification PatchClassification = iota
	UnofficialPatch
	MonkeyPatch
	BackportPatch
	CherryPickPatch
)

func (p PatchClassification) IsValid() bool {
	return p > UnknownPatchClassification && p <= CherryPickPatch
}

type IssueClassification int

const (
	UnknownIssueClassification IssueClassification = iota
	DefectIssue
	EnhancementIssue
	SecurityIssue
)

func (i IssueClassification) IsValid() bool {
	return i > UnknownIssueClassification && i <= SecurityIssue
}
