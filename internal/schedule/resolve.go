package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/monocle-dev/huddle/internal/apperrors"
)

var (
	tomorrowTokens         = []string{"tomorrow", "내일"}
	dayAfterTomorrowTokens = []string{"day-after-tomorrow", "모레"}

	compactDate = regexp.MustCompile(`^\d{8}$`)
)

// ResolveDate maps tomorrow, day-after-tomorrow or YYYYMMDD to a calendar
// day in now's location.
func ResolveDate(token string, now time.Time) (year int, month time.Month, day int, err error) {
	y, m, d := now.Date()

	switch {
	case matches(token, tomorrowTokens):
		year, month, day = normalizeDate(y, m, d+1, now.Location())
		return year, month, day, nil
	case matches(token, dayAfterTomorrowTokens):
		year, month, day = normalizeDate(y, m, d+2, now.Location())
		return year, month, day, nil
	case compactDate.MatchString(token):
		year, _ = strconv.Atoi(token[0:4])
		mm, _ := strconv.Atoi(token[4:6])
		day, _ = strconv.Atoi(token[6:8])

		if mm < 1 || mm > 12 || day < 1 {
			return 0, 0, 0, apperrors.Validation(apperrors.MsgBadDate)
		}
		month = time.Month(mm)

		// Reject days that time.Date would roll into the next month.
		probe := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
		if probe.Day() != day || probe.Month() != month {
			return 0, 0, 0, apperrors.Validation(apperrors.MsgBadDate)
		}
		return year, month, day, nil
	default:
		return 0, 0, 0, apperrors.Validation(apperrors.MsgBadDate)
	}
}

// ResolveClock parses HH:MM into hour and minute.
func ResolveClock(token string) (hour, minute int, err error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return 0, 0, apperrors.Validation(apperrors.MsgBadTime)
	}

	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, apperrors.Validation(apperrors.MsgBadTime)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, apperrors.Validation(apperrors.MsgBadTime)
	}

	return hour, minute, nil
}

// Resolve combines a date token and an HH:MM token into an instant with
// zero seconds, in now's location.
func Resolve(dateToken, timeToken string, now time.Time) (time.Time, error) {
	y, m, d, err := ResolveDate(dateToken, now)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, err := ResolveClock(timeToken)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(y, m, d, hour, minute, 0, 0, now.Location()), nil
}

func normalizeDate(y int, m time.Month, d int, loc *time.Location) (int, time.Month, int) {
	return time.Date(y, m, d, 12, 0, 0, 0, loc).Date()
}

func matches(token string, options []string) bool {
	for _, o := range options {
		if strings.EqualFold(token, o) {
			return true
		}
	}
	return false
}
