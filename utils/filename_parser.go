package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const reportTimeLayout = "20060102_150405"

var (
	unsafeChars       = regexp.MustCompile(`[^a-z0-9]+`)
	reportNamePattern = regexp.MustCompile(`^inventory_([a-z0-9-]+)_(\d{8}_\d{6})\.(xlsx|png|pdf|html|jpg)$`)
)

// ReportFile is the parsed form of an inventory report file name
type ReportFile struct {
	Owner     string
	CreatedAt time.Time
	Extension string
}

// SlugOwner lowercases owner and replaces everything but letters and digits with hyphens
func SlugOwner(owner string) string {
	slug := strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(owner), "-"), "-")
	if slug == "" {
		return "portal"
	}
	return slug
}

// BuildReportFileName builds a file name following the pattern:
// inventory_OWNER_YYYYMMDD_HHMMSS.EXT
// Example: inventory_acme-co_20261019_150405.xlsx
func BuildReportFileName(owner string, createdAt time.Time, ext string) string {
	return fmt.Sprintf("inventory_%s_%s.%s", SlugOwner(owner), createdAt.UTC().Format(reportTimeLayout), strings.TrimPrefix(ext, "."))
}

// ParseReportFileName parses a name produced by BuildReportFileName
func ParseReportFileName(filename string) (*ReportFile, error) {
	matches := reportNamePattern.FindStringSubmatch(strings.ToLower(filename))
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid report filename format: %s", filename)
	}

	createdAt, err := time.Parse(reportTimeLayout, matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid report timestamp %s: %w", matches[2], err)
	}

	return &ReportFile{
		Owner:     matches[1],
		CreatedAt: createdAt,
		Extension: matches[3],
	}, nil
}
