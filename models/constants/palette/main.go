package palette

import (
	"popdiff/api/models/constants"
	"strings"
)

const (
	Coolwarm constants.Palette = "coolwarm"
	Viridis  constants.Palette = "viridis"
)

func CastToPalette(text string) constants.Palette {
	switch strings.ToLower(text) {
	case "viridis":
		return Viridis
	default:
		return Coolwarm
	}
}
