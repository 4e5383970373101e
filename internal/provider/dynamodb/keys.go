package dynamodb

import "fmt"

// PK/SK prefix constants.
const (
	prefixDate   = "DATE#"
	prefixSource = "SOURCE#"
	prefixFile   = "#FILE#"

	skProfile = "PROFILE"
	skReport  = "REPORT"
)

func datePK(date string) string   { return prefixDate + date }
func sourcePK(id string) string   { return prefixSource + id }
func profileSK() string           { return skProfile }
func reportSK() string            { return skReport }
func fileSKPrefix(id string) string { return prefixSource + id + prefixFile }

// fileSK keeps batch items in upload order; the index is zero-padded so the
// lexicographic sort key matches the numeric one.
func fileSK(id string, idx int) string {
	return fmt.Sprintf("%s%06d", fileSKPrefix(id), idx)
}
