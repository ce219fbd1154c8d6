package util

import (
	"course_admin_backend/internal/model"
	"fmt"
	"regexp"
	"strconv"
)

// NoDuration is returned when no chapter contributes a recognizable time token.
const NoDuration = "—"

var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// ParseTotalDuration sums free-text chapter durations like "2h 30m" into a
// display total. Each chapter contributes the first hours token and the first
// minutes token it contains; garbled strings contribute whatever matches and
// absent tokens contribute nothing. Malformed input never errors.
//
// Minutes are accumulated raw and folded into hours once at the end, so a
// single "90m" chapter yields "1 hrs 30 mins".
func ParseTotalDuration(chapters []model.GeneratedChapter) string {
	totalMinutes := 0

	for _, chapter := range chapters {
		if m := hoursPattern.FindStringSubmatch(chapter.Duration); m != nil {
			h, _ := strconv.Atoi(m[1])
			totalMinutes += h * 60
		}
		if m := minutesPattern.FindStringSubmatch(chapter.Duration); m != nil {
			mins, _ := strconv.Atoi(m[1])
			totalMinutes += mins
		}
	}

	if totalMinutes == 0 {
		return NoDuration
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours == 0 {
		return fmt.Sprintf("%d mins", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%d hrs", hours)
	}
	return fmt.Sprintf("%d hrs %d mins", hours, minutes)
}
