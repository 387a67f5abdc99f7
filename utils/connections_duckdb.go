//go:build cgo

package utils

import (
	_ "github.com/marcboeker/go-duckdb"
)
