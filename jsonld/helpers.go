package jsonld

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// now is replaced in tests.
var now = time.Now

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateLayout,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// FormatDate converts a unix timestamp or a date string in one of the common
// layouts to YYYY-MM-DD. Timestamps are read as UTC. Values that cannot be
// parsed yield today's date.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)

	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC().Format(dateLayout)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(dateLayout)
		}
	}

	return now().Format(dateLayout)
}

// FormatDuration converts a number of minutes to an ISO 8601 duration:
// PT45M, PT2H or PT1H30M. Negative values are treated as zero.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("PT%dM", minutes)
	}

	hours, mins := minutes/60, minutes%60
	if mins == 0 {
		return fmt.Sprintf("PT%dH", hours)
	}
	return fmt.Sprintf("PT%dH%dM", hours, mins)
}

// CurrentURL reconstructs the absolute URL of an incoming request, suitable
// for Article.PageURL.
func CurrentURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
