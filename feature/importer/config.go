package importer

// Config holds policy configuration for the import pipeline.
//
// The summary heuristics (boilerplate marker, attribution pattern and length
// cap) are editorial policy rather than fixed law, so they are configurable
// like every other knob.
type Config struct {
	// SiteOrigin is the canonical origin used to absolutize relative image URLs.
	SiteOrigin string `mapstructure:"site_origin" default:"https://www.focode.org"`
	// PlaceholderImage is the cover image used when a record carries none.
	PlaceholderImage string `mapstructure:"placeholder_image" default:"https://www.focode.org/assets/img/placeholder.jpg"`
	// ContentSelector is the CSS selector of the primary content container
	// in legacy HTML. When it matches nothing, the body is used instead.
	ContentSelector string `mapstructure:"content_selector" default:"article"`
	// MinHTMLLength is the minimum rendered body length; shorter records are skipped.
	MinHTMLLength int `mapstructure:"min_html_length" default:"80"`
	// DefaultCategory is assigned to newly created articles without a category.
	DefaultCategory string `mapstructure:"default_category" default:"magazine"`
	// BoilerplateMarker disqualifies summary candidates that start with it.
	BoilerplateMarker string `mapstructure:"boilerplate_marker" default:"Lire aussi"`
	// AttributionPattern disqualifies short attribution lines as summaries.
	AttributionPattern string `mapstructure:"attribution_pattern" default:"(?i)\\b(la r[ée]daction|r[ée]daction de focode|editorial staff)\\b"`
	// AttributionMaxLen is the length under which an attribution match disqualifies.
	AttributionMaxLen int `mapstructure:"attribution_max_len" default:"160"`
}
