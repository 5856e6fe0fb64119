package model

// Scope says whether a component is needed at runtime. The zero value means no scope was given.
type Scope int

const (
	UnsetScope Scope = iota
	RequiredScope
	OptionalScope
	ExcludedScope
)
