package catalog

import (
	"fmt"
	"sort"
)

// BestLabel picks the format to advertise as a video's best quality.
//
// Each resolution's leading digits form its quality tier ("1080p" is tier
// 1080; no leading digits means tier 0). The greatest tier wins, tier
// ties fall back to the larger size, and a full tie keeps the entry seen
// first. Labels are scanned in ascending order so the result is
// deterministic for a fixed format set. The winner renders as
// "label res"; an empty format set yields an empty string.
func BestLabel(formats map[string]Resolution) string {
	labels := make([]string, 0, len(formats))
	for label := range formats {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var (
		found    bool
		bestTier int
		bestSize int64
		best     string
	)
	for _, label := range labels {
		format := formats[label]
		tier := parseTier(format.Res)
		if !found || tier > bestTier || (tier == bestTier && format.Size > bestSize) {
			found = true
			bestTier = tier
			bestSize = format.Size
			best = fmt.Sprintf("%s %s", label, format.Res)
		}
	}
	return best
}

// parseTier reads the leading decimal run of a resolution string. Values
// without a numeric prefix rank as tier 0 rather than erroring, so
// malformed resolutions still sort below every real one.
func parseTier(res string) int {
	tier := 0
	for _, r := range res {
		if r < '0' || r > '9' {
			break
		}
		tier = tier*10 + int(r-'0')
	}
	return tier
}
