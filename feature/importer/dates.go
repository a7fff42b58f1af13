package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"focode-importer/feature/importer/models"
)

// archiveDate is the display date of last resort. Articles without any
// recoverable date are shelved under it rather than rejected.
const archiveDate = "Archive"

var monthNames = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var (
	textDatePattern = regexp.MustCompile(`\b(\d{1,2}) (janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre) (\d{4})\b`)
	slugDatePattern = regexp.MustCompile(`(\d{2})(\d{2})(\d{2})$`)
)

// InferDate produces the display date for a record. Priority chain, first
// success wins:
//
//  1. the record's own date field, trimmed;
//  2. a written-out date found in paragraph text;
//  3. a ddmmyy suffix on the slug;
//  4. the archive sentinel.
func InferDate(rec *models.Record, slug string) string {
	if d := rec.ExplicitDate(); d != "" {
		return d
	}
	if d := dateFromBlocks(rec.Blocks); d != "" {
		return d
	}
	if d := dateFromSlug(slug); d != "" {
		return d
	}
	return archiveDate
}

// dateFromBlocks scans paragraph text for the first written-out date.
func dateFromBlocks(blocks []models.Block) string {
	for _, b := range blocks {
		if b.Type != models.BlockParagraph {
			continue
		}
		if m := textDatePattern.FindString(b.Text); m != "" {
			return m
		}
	}
	return ""
}

// dateFromSlug interprets a trailing six-digit slug suffix as ddmmyy. The
// suffix only counts when it round-trips through a real calendar date, so
// arbitrary numeric suffixes don't turn into dates.
func dateFromSlug(slug string) string {
	m := slugDatePattern.FindStringSubmatch(slug)
	if m == nil {
		return ""
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	yy, _ := strconv.Atoi(m[3])
	year := 2000 + yy

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return ""
	}

	return fmt.Sprintf("%02d %s %d", day, monthNames[month-1], year)
}
