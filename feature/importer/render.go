package importer

import (
	"fmt"
	"html"
	"strings"

	"focode-importer/feature/importer/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// noiseSelectors matches the page chrome the crawler drags along inside
// legacy HTML: navigation, share widgets, forms, embedded frames. Matched
// elements are removed wholesale before the body is extracted.
var noiseSelectors = []string{
	"nav",
	"footer",
	"script",
	"iframe",
	"form",
	".social-share",
	".share-buttons",
	".back-to-top",
	".hamburger",
	".menu-toggle",
}

// Renderer converts record content into sanitized canonical HTML. Both
// ingestion variants, structured blocks and legacy free-form HTML, come out
// of the same contract.
type Renderer struct {
	siteOrigin      string
	contentSelector string
	policy          *bluemonday.Policy
}

// NewRenderer creates a renderer with the given pipeline policy.
func NewRenderer(cfg Config) *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("loading", "decoding").OnElements("img")

	return &Renderer{
		siteOrigin:      strings.TrimRight(cfg.SiteOrigin, "/"),
		contentSelector: cfg.ContentSelector,
		policy:          policy,
	}
}

// Render produces the canonical body for a record. Structured blocks are
// authoritative when present; otherwise the legacy HTML field is cleaned up.
func (r *Renderer) Render(rec *models.Record) string {
	if len(rec.Blocks) > 0 {
		return r.RenderBlocks(rec.Blocks)
	}
	return r.RenderLegacyHTML(rec.HTML, rec.Title)
}

// RenderBlocks renders a structured block sequence in order. Blocks with an
// unrecognized type or missing required fields are skipped. An empty
// sequence yields empty output, which the engine later rejects on length.
//
// Image src values are carried verbatim: they are URL attributes coming from
// the crawler, and that raw trust boundary is accepted here.
func (r *Renderer) RenderBlocks(blocks []models.Block) string {
	var b strings.Builder

	for _, block := range blocks {
		switch block.Type {
		case models.BlockHeading:
			if block.Text == "" {
				continue
			}
			// Clamp to h2-h3: the page already renders the title as its
			// sole h1, and deeper levels flatten to h3.
			level := block.Level
			if level < 2 {
				level = 2
			}
			if level > 3 {
				level = 3
			}
			fmt.Fprintf(&b, "<h%d>%s</h%d>", level, html.EscapeString(block.Text), level)

		case models.BlockParagraph:
			if block.Text == "" {
				continue
			}
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(block.Text))

		case models.BlockImage:
			src := strings.TrimSpace(block.Src)
			if src == "" {
				continue
			}
			fmt.Fprintf(&b, `<figure><img src="%s" alt="%s" loading="lazy" decoding="async"></figure>`,
				src, html.EscapeString(block.Alt))

		case models.BlockList:
			if len(block.Items) == 0 {
				continue
			}
			b.WriteString("<ul>")
			for _, item := range block.Items {
				fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(item))
			}
			b.WriteString("</ul>")

		case models.BlockQuote:
			if block.Text == "" {
				continue
			}
			fmt.Fprintf(&b, "<blockquote><p>%s</p></blockquote>", html.EscapeString(block.Text))

		case models.BlockCode:
			if block.Text == "" {
				continue
			}
			fmt.Fprintf(&b, "<pre><code>%s</code></pre>", html.EscapeString(block.Text))
		}
	}

	return b.String()
}

// RenderLegacyHTML cleans a raw scraped page fragment: strips noise
// elements, drops the heading that duplicates the record title, repairs
// site-relative image URLs, extracts the primary content container, and
// sanitizes the result.
func (r *Renderer) RenderLegacyHTML(rawHTML, title string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	doc.Find(strings.Join(noiseSelectors, ", ")).Remove()

	// The page template renders the stored title itself; a matching heading
	// in the body would show it twice. Only the first exact match goes.
	wantTitle := strings.TrimSpace(title)
	if wantTitle != "" {
		doc.Find("h1, h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.TrimSpace(s.Text()) == wantTitle {
				s.Remove()
				return false
			}
			return true
		})
	}

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok {
			return
		}
		// Protocol-relative URLs are already absolute.
		if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
			s.SetAttr("src", r.siteOrigin+src)
		}
	})

	container := doc.Find(r.contentSelector).First()
	if container.Length() == 0 {
		container = doc.Find("body").First()
	}

	inner, err := container.Html()
	if err != nil {
		return ""
	}

	return r.SanitizeAuthorHTML(inner)
}

// SanitizeAuthorHTML strips executable content from raw author-supplied
// HTML. Every path that stores free-form HTML must pass through here before
// persistence.
func (r *Renderer) SanitizeAuthorHTML(raw string) string {
	return strings.TrimSpace(r.policy.Sanitize(raw))
}
