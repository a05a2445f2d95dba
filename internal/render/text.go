package render

import (
	"fmt"
	"strings"

	"cicadasim/internal/model"
)

// Census formats a snapshot as a generation header followed by one row per
// genotype: the period, then its cohort counts from the most mature cohort
// to the newest. Fractional counts are truncated for display only.
func Census(c model.Census) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Generation %d\n--------------\n", c.Generation)
	for _, series := range c.Series {
		fmt.Fprintf(&out, "%2d: ", series.Period)
		for _, count := range series.Counts {
			fmt.Fprintf(&out, "%5d ", int(count))
		}
		out.WriteString("\n")
	}
	return out.String()
}

// Summary formats a run summary as a single report block.
func Summary(s model.RunSummary) string {
	var out strings.Builder
	fmt.Fprintf(&out, "run %s: breeder=%s seed=%d years=%d/%d\n", s.RunID, s.Breeder, s.Seed, s.YearsExecuted, s.Years)
	if s.Extinct {
		out.WriteString("population extinct\n")
		return out.String()
	}
	fmt.Fprintf(&out, "survivors: %s\n", joinPeriods(s.Survivors))
	fmt.Fprintf(&out, "dominant period: %d (%.0f of %.0f total)\n", s.DominantPeriod, s.DominantCount, s.TotalFinal)
	return out.String()
}

func joinPeriods(periods []int) string {
	if len(periods) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(periods))
	for _, period := range periods {
		parts = append(parts, fmt.Sprintf("%d", period))
	}
	return strings.Join(parts, " ")
}
