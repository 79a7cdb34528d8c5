package extract

import (
	"regexp"
	"strings"

	"github.com/jobsift/jobsift/internal/record"
)

var (
	companyLabelRe  = regexp.MustCompile(`(?i)^\s*(?:company|employer|organization)\s*:\s*(.+)$`)
	roleLabelRe     = regexp.MustCompile(`(?i)^\s*(?:role|position|title)\s*:\s*(.+)$`)
	locationLabelRe = regexp.MustCompile(`(?i)^\s*(?:location|city|remote)\s*:\s*(.+)$`)

	dashSplitRe = regexp.MustCompile(`\s+-\s+|\s*[–—]\s*`)
	roleAtRe    = regexp.MustCompile(`^\s*(.+?)\s+at\s+([^()]+?)(?:\s*\(([^)]+)\))?\s*$`)
)

// ParseBlock parses one plain-text block into a record using three
// strategies in decreasing order of confidence: explicit "Label: value"
// lines (first match per field wins), a "Company - Role - Location" dash
// split, and a "Role at Company (Location)" inline pattern. Fields no
// strategy resolves stay empty; the sentinel is applied only at render time.
// The second return value is false when no role could be resolved, in which
// case the block yields no record.
func ParseBlock(block string) (record.Record, bool) {
	var rec record.Record
	lines := strings.Split(block, "\n")

	for _, line := range lines {
		if rec.Company == "" {
			if m := companyLabelRe.FindStringSubmatch(line); m != nil {
				rec.Company = Clean(m[1])
			}
		}
		if rec.Role == "" {
			if m := roleLabelRe.FindStringSubmatch(line); m != nil {
				rec.Role = Clean(m[1])
			}
		}
		if rec.Location == "" {
			if m := locationLabelRe.FindStringSubmatch(line); m != nil {
				rec.Location = Clean(m[1])
			}
		}
	}

	if rec.Company == "" || rec.Role == "" || rec.Location == "" {
		for _, line := range lines {
			if labeledLine(line) {
				continue
			}
			parts := dashSplitRe.Split(strings.TrimSpace(line), -1)
			if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
				continue
			}
			if rec.Company == "" {
				rec.Company = Clean(parts[0])
			}
			if rec.Role == "" {
				rec.Role = Clean(parts[1])
			}
			if rec.Location == "" {
				rec.Location = Clean(parts[2])
			}
			break
		}
	}

	if rec.Role == "" || rec.Company == "" {
		for _, line := range lines {
			if labeledLine(line) {
				continue
			}
			m := roleAtRe.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			if rec.Role == "" {
				rec.Role = Clean(m[1])
			}
			if rec.Company == "" {
				rec.Company = Clean(m[2])
			}
			if rec.Location == "" && m[3] != "" {
				rec.Location = Clean(m[3])
			}
			break
		}
	}

	if rec.Role == "" {
		return record.Record{}, false
	}
	return rec, true
}

func labeledLine(line string) bool {
	return companyLabelRe.MatchString(line) || roleLabelRe.MatchString(line) || locationLabelRe.MatchString(line)
}
