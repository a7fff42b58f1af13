package importer

import (
	"fmt"
	"regexp"
	"strings"

	"focode-importer/feature/importer/models"
)

// Summary sizing. A truncated summary is cut at summaryCutoff runes and
// completed with the ellipsis marker, landing exactly on summaryMaxLen.
const (
	summaryMaxLen = 220
	summaryCutoff = 217
	ellipsis      = "..."
)

// Extractor derives presentation metadata (cover image, summary) from a
// record using prioritized heuristics.
type Extractor struct {
	placeholderImage  string
	boilerplateMarker string
	attribution       *regexp.Regexp
	attributionMaxLen int
}

// NewExtractor creates an extractor from pipeline policy. It fails only on
// an invalid attribution pattern.
func NewExtractor(cfg Config) (*Extractor, error) {
	attribution, err := regexp.Compile(cfg.AttributionPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid attribution pattern: %w", err)
	}

	return &Extractor{
		placeholderImage:  cfg.PlaceholderImage,
		boilerplateMarker: cfg.BoilerplateMarker,
		attribution:       attribution,
		attributionMaxLen: cfg.AttributionMaxLen,
	}, nil
}

// CoverImage selects the representative image URL for a record. First match
// wins: first image block, first entry of the images array, then the
// record's own image, cover and thumbnail fields. Records without any usable
// image get the placeholder, so stored articles never have an empty image.
func (e *Extractor) CoverImage(rec *models.Record) string {
	for _, b := range rec.Blocks {
		if b.Type == models.BlockImage {
			if src := strings.TrimSpace(b.Src); src != "" {
				return src
			}
		}
	}

	for _, img := range rec.Images {
		if src := strings.TrimSpace(img.Src); src != "" {
			return src
		}
	}

	for _, candidate := range []string{rec.Image, rec.Cover, rec.Thumbnail} {
		if src := strings.TrimSpace(candidate); src != "" {
			return src
		}
	}

	return e.placeholderImage
}

// Summary returns the first paragraph suitable as a teaser, truncated to
// the summary length cap. It returns "" when no paragraph qualifies.
//
// Disqualified paragraphs: empty after whitespace normalization, starting
// with the boilerplate marker, or short attribution lines (an editorial
// staff signature rather than content).
func (e *Extractor) Summary(blocks []models.Block) string {
	for _, b := range blocks {
		if b.Type != models.BlockParagraph {
			continue
		}

		text := normalizeWhitespace(b.Text)
		if text == "" {
			continue
		}
		if e.boilerplateMarker != "" && strings.HasPrefix(text, e.boilerplateMarker) {
			continue
		}
		if e.attribution.MatchString(text) && len([]rune(text)) < e.attributionMaxLen {
			continue
		}

		return truncateSummary(text)
	}

	return ""
}

func truncateSummary(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryMaxLen {
		return text
	}
	return string(runes[:summaryCutoff]) + ellipsis
}

// normalizeWhitespace collapses runs of whitespace into single spaces and
// trims the result.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
