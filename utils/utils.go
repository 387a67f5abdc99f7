package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var populationCodePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}

// SplitCommaSeparated trims each item, drops empty ones and keeps the
// first occurrence of duplicates, preserving order.
func SplitCommaSeparated(str string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(str, ",") {
		item = strings.TrimSpace(item)
		if item == "" || StringInSlice(item, items) {
			continue
		}
		items = append(items, item)
	}
	return items
}

func IsValidPopulationCode(code string) bool {
	return populationCodePattern.MatchString(code)
}
