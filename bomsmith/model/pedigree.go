package model

import (
	"github.com/allisonsierra/bomsmith/bomsmith/primitive"
)

// Pedigree describes where a component came from and how it was changed along the way.
type Pedigree struct {
	Ancestors   *[]Component
	Descendants *[]Component
	Variants    *[]Component
	Commits     *[]Commit
	Patches     *[]Patch
	Notes       string
}

type Commit struct {
	UID       primitive.NormalizedString
	URL       primitive.URI
	Author    *IdentifiableAction
	Committer *IdentifiableAction
	Message   primitive.NormalizedString
}

type IdentifiableAction struct {
	Timestamp primitive.DateTime
	Name      primitive.NormalizedString
	Email     primitive.NormalizedString
}

type Patch struct {
	Type     PatchClassification
	Diff     *Diff
	Resolves *[]Issue
}

type Diff struct {
	Text *AttachedText
	URL  primitive.URI
}

type Issue struct {
	Type        IssueClassification
	ID          primitive.NormalizedString
	Name        primitive.NormalizedString
	Description primitive.NormalizedString
	Source      *Source
	References  *[]primitive.URI
}

type Source struct {
	Name primitive.NormalizedString
	URL  primitive.URI
}
