package model

// AggregateType states how complete a composition is.
type AggregateType int

const (
	UnsetAggregate AggregateType = iota
	CompleteAggregate
	IncompleteAggregate
	IncompleteFirstPartyOnlyAggregate
	IncompleteThirdPartyOnlyAggregate
	UnknownAggregate
	NotSpecifiedAggregate
)

func (a AggregateType) IsValid() bool {
	return a > UnsetAggregate && a <= NotSpecifiedAggregate
}

type DataFlowType int

const (
	UnsetDataFlow DataFlowType = iota
	InboundDataFlow
	OutboundDataFlow
	BiDirectionalDataFlow
	UnknownDataFlow
)

func (f DataFlowType) IsValid() bool {
	return f > UnsetDataFlow && f <= UnknownDataFlow
}
