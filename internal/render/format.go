package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/awpl-blog/blogsite/internal/catalog"
)

const (
	cardDateLayout     = "January 2, 2006"
	readableDateLayout = "January 2, 2006 at 03:04 PM"
	wordsPerMinute     = 200
)

// PostDate is the date shown on a card, e.g. "May 19, 2023".
func PostDate(p catalog.Post) string {
	if !p.DateValid {
		return "Invalid Date"
	}
	return p.PublishedAt.Format(cardDateLayout)
}

// FormatReadableDate is the long form used on post pages:
// "May 19, 2023 at 04:06 PM IST".
func FormatReadableDate(raw string) string {
	t, ok := catalog.ParseDate(raw)
	if !ok {
		return "Invalid date"
	}
	return t.Format(readableDateLayout) + " IST"
}

// ReadingTime estimates reading time at 200 words per minute, rounded up,
// never less than one minute.
func ReadingTime(text string) string {
	words := len(strings.Fields(text))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes <= 1 {
		return "1 minute read"
	}
	return strconv.Itoa(minutes) + " minutes read"
}
