package tracker

import "strings"

const (
	RegionNorth     = "North India"
	RegionSouth     = "South India"
	RegionEast      = "East India"
	RegionWest      = "West India"
	RegionNortheast = "Northeast India"
	RegionCentral   = "Central India"

	// RegionFallback is used for any state not in the table.
	RegionFallback = "India"
)

var regionByState = map[string]string{
	"delhi":             RegionNorth,
	"haryana":           RegionNorth,
	"punjab":            RegionNorth,
	"chandigarh":        RegionNorth,
	"himachal pradesh":  RegionNorth,
	"jammu and kashmir": RegionNorth,
	"ladakh":            RegionNorth,
	"uttarakhand":       RegionNorth,
	"uttar pradesh":     RegionNorth,

	"karnataka":      RegionSouth,
	"kerala":         RegionSouth,
	"tamil nadu":     RegionSouth,
	"telangana":      RegionSouth,
	"andhra pradesh": RegionSouth,
	"puducherry":     RegionSouth,
	"lakshadweep":    RegionSouth,

	"west bengal":                 RegionEast,
	"odisha":                      RegionEast,
	"bihar":                       RegionEast,
	"jharkhand":                   RegionEast,
	"andaman and nicobar islands": RegionEast,

	"maharashtra": RegionWest,
	"gujarat":     RegionWest,
	"goa":         RegionWest,
	"rajasthan":   RegionWest,

	"dadra and nagar haveli and daman and diu": RegionWest,

	"assam":             RegionNortheast,
	"arunachal pradesh": RegionNortheast,
	"manipur":           RegionNortheast,
	"meghalaya":         RegionNortheast,
	"mizoram":           RegionNortheast,
	"nagaland":          RegionNortheast,
	"tripura":           RegionNortheast,
	"sikkim":            RegionNortheast,

	"madhya pradesh": RegionCentral,
	"chhattisgarh":   RegionCentral,
}

// RegionFor classifies a state name. It is a pure function and never fails.
func RegionFor(state string) string {
	if r, ok := regionByState[strings.ToLower(strings.TrimSpace(state))]; ok {
		return r
	}
	return RegionFallback
}
