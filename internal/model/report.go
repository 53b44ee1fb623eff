package model

import (
	"fmt"
	"strings"
	"time"
)

// Day-period boundaries, in minutes since midnight. The noon window is
// inclusive on both ends.
const (
	noonStart = 11 * 60
	noonEnd   = 15*60 + 30
)

// PeriodLabel returns the localized day-period label for a local time:
// morning before 11:00, noon through 15:30, afternoon after.
func PeriodLabel(at time.Time) string {
	minutes := at.Hour()*60 + at.Minute()
	switch {
	case minutes >= noonStart && minutes <= noonEnd:
		return "中午"
	case minutes < noonStart:
		return "上午"
	default:
		return "下午"
	}
}

func formatTimestamp(at time.Time) string {
	return at.Format("01.02.2006 15:04:05")
}

// ExportText builds the shareable check-in progress report. The format is a
// fixed external contract:
//
//	<MM.DD.YYYY HH:MM:SS>(<period>)
//	[未签到 <n>人 已签到<percent>%]
//	<unchecked names>
//	[请假 <n>人]
//	<marked names>
//
// Names appear in table order; name lines are empty when nobody qualifies.
func (b *AttendanceBook) ExportText(table *Table, at time.Time) string {
	stats := b.Statistics(table)
	unchecked := b.namesByStatus(table, StatusUnchecked)
	marked := b.namesByStatus(table, StatusMarked)

	return fmt.Sprintf("%s(%s)\n[未签到 %d人 已签到%d%%]\n%s\n[请假 %d人]\n%s",
		formatTimestamp(at),
		PeriodLabel(at),
		stats.Unchecked,
		stats.CompletedRatioPercent(),
		strings.Join(unchecked, ", "),
		stats.Marked,
		strings.Join(marked, ", "),
	)
}
