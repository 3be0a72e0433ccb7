package app

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	preparedBinaryParam  = "disable_prepared_binary_result"
	maxTracedQueryLength = 512
)

var sqlWhitespace = regexp.MustCompile(`\s+`)

// normalizeDBURL turns on disable_prepared_binary_result for transaction
// poolers unless the URL already sets it either way.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Has(preparedBinaryParam) {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL accepts both URL and key=value DSNs.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(raw) {
		name, ok := strings.CutPrefix(field, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(name, `"'`); name != "" {
			return name
		}
	}
	return ""
}

// formatDBQueryForTrace collapses whitespace so span names stay on one line.
func formatDBQueryForTrace(query string) string {
	query = sqlWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}
