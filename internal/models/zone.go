package models

import (
	"math"

	"github.com/fatih/color"
)

// Zone is one of six power bands, with an exclusive upper limit as a
// fraction of FTP. The bands are contiguous and exhaustive: every
// non-negative power ratio maps to exactly one zone.
type Zone struct {
	Number int
	Name   string
	Limit  float64
	Hex    string
	Color  color.Attribute
}

// Zwift power zones.
var Zones = []Zone{
	{Number: 1, Name: "Recovery", Limit: 0.60, Hex: "#7f7f7f", Color: color.FgHiBlack},
	{Number: 2, Name: "Endurance", Limit: 0.76, Hex: "#3284c9", Color: color.FgBlue},
	{Number: 3, Name: "Tempo", Limit: 0.90, Hex: "#5aca5a", Color: color.FgGreen},
	{Number: 4, Name: "Threshold", Limit: 1.05, Hex: "#ffca28", Color: color.FgYellow},
	{Number: 5, Name: "VO2 Max", Limit: 1.19, Hex: "#ff6924", Color: color.FgHiYellow},
	{Number: 6, Name: "Anaerobic", Limit: math.Inf(1), Hex: "#ff3737", Color: color.FgRed},
}

// ZoneFor returns the first zone whose limit exceeds the given power ratio.
// The last zone catches everything at or above the largest finite limit.
func ZoneFor(ratio float64) Zone {
	for _, z := range Zones {
		if ratio < z.Limit {
			return z
		}
	}
	return Zones[len(Zones)-1]
}
