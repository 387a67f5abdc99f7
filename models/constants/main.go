package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout popdiff and it's
	associated services.
*/
type FstMethod string
type Palette string
