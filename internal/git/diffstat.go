package git

import (
	"fmt"
	"strings"
)

// DiffStats counts added and removed lines in a unified diff.
type DiffStats struct {
	Added   int
	Removed int
}

// IsEmpty reports whether no lines were added or removed.
func (s DiffStats) IsEmpty() bool {
	return s.Added == 0 && s.Removed == 0
}

func (s DiffStats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// ComputeStats scans diff line by line. Lines starting with "+" count as
// added and lines starting with "-" as removed, except the "+++" and "---"
// file headers. Hunk headers, context and metadata lines are ignored.
func ComputeStats(diff string) DiffStats {
	var stats DiffStats
	if diff == "" {
		return stats
	}

	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			continue
		case strings.HasPrefix(line, "+"):
			stats.Added++
		case strings.HasPrefix(line, "-"):
			stats.Removed++
		}
	}
	return stats
}
