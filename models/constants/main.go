package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout Concord and it's
	associated services.
*/
type TruthState int
type CallState int
type ContingencyState int

type SchemePolicy string
