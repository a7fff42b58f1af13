package importer

import (
	"strings"
	"testing"

	"focode-importer/feature/importer/models"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{
		SiteOrigin:         "https://www.focode.org",
		PlaceholderImage:   "https://www.focode.org/assets/img/placeholder.jpg",
		ContentSelector:    "article",
		MinHTMLLength:      80,
		DefaultCategory:    "magazine",
		BoilerplateMarker:  "Lire aussi",
		AttributionPattern: `(?i)\b(la r[ée]daction|r[ée]daction de focode|editorial staff)\b`,
		AttributionMaxLen:  160,
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestRenderBlocks_HeadingClamping(t *testing.T) {
	r := NewRenderer(testConfig())

	tests := []struct {
		name     string
		level    int
		expected string
	}{
		{"level 1 remapped to 2", 1, "<h2>Titre</h2>"},
		{"level 2 kept", 2, "<h2>Titre</h2>"},
		{"level 3 kept", 3, "<h3>Titre</h3>"},
		{"level 5 clamped to 3", 5, "<h3>Titre</h3>"},
		{"level 0 remapped to 2", 0, "<h2>Titre</h2>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.RenderBlocks([]models.Block{{Type: models.BlockHeading, Level: tt.level, Text: "Titre"}})
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderBlocks_EscapesText(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderBlocks([]models.Block{
		{Type: models.BlockParagraph, Text: `1 < 2 & "quoted"`},
	})
	assert.Equal(t, "<p>1 &lt; 2 &amp; &#34;quoted&#34;</p>", out)
}

func TestRenderBlocks_Image(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderBlocks([]models.Block{
		{Type: models.BlockImage, Src: "https://www.focode.org/img/a.jpg", Alt: `une "photo"`},
	})
	assert.Equal(t,
		`<figure><img src="https://www.focode.org/img/a.jpg" alt="une &#34;photo&#34;" loading="lazy" decoding="async"></figure>`,
		out)
}

func TestRenderBlocks_SkipsInvalidBlocks(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderBlocks([]models.Block{
		{Type: models.BlockImage, Src: "  "},           // missing src
		{Type: models.BlockHeading, Level: 2},          // missing text
		{Type: "table", Text: "unsupported"},           // unrecognized type
		{Type: models.BlockParagraph, Text: "Gardé."},  // survives
	})
	assert.Equal(t, "<p>Gardé.</p>", out)
}

func TestRenderBlocks_ListQuoteCode(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderBlocks([]models.Block{
		{Type: models.BlockList, Items: []string{"un", "deux"}},
		{Type: models.BlockQuote, Text: "Une citation."},
		{Type: models.BlockCode, Text: "x < y"},
	})
	assert.Equal(t,
		"<ul><li>un</li><li>deux</li></ul><blockquote><p>Une citation.</p></blockquote><pre><code>x &lt; y</code></pre>",
		out)
}

func TestRenderBlocks_EmptySequence(t *testing.T) {
	r := NewRenderer(testConfig())
	assert.Equal(t, "", r.RenderBlocks(nil))
}

func TestRenderLegacyHTML_RemovesDuplicateTitle(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderLegacyHTML("<h1>My Title</h1><p>Body</p>", "My Title")
	assert.Equal(t, "<p>Body</p>", normalizeSpace(out))
	assert.NotContains(t, out, "<h1>")
}

func TestRenderLegacyHTML_TitleMatchIsExactAndCaseSensitive(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderLegacyHTML("<h1>my title</h1><p>Body</p>", "My Title")
	assert.Contains(t, out, "my title")
}

func TestRenderLegacyHTML_OnlyFirstMatchingHeadingRemoved(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderLegacyHTML("<h2>Echo</h2><p>Body</p><h2>Echo</h2>", "Echo")
	assert.Equal(t, 1, strings.Count(out, "Echo"))
}

func TestRenderLegacyHTML_RepairsRelativeImages(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderLegacyHTML(`<p>Texte</p><img src="/img/a.jpg">`, "")
	assert.Contains(t, out, `src="https://www.focode.org/img/a.jpg"`)
}

func TestRenderLegacyHTML_LeavesAbsoluteImages(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderLegacyHTML(`<img src="https://cdn.example.org/a.jpg"><p>x</p>`, "")
	assert.Contains(t, out, `src="https://cdn.example.org/a.jpg"`)
}

func TestRenderLegacyHTML_StripsNoiseElements(t *testing.T) {
	r := NewRenderer(testConfig())

	raw := `<nav>menu</nav><p>Contenu.</p><footer>pied</footer>` +
		`<div class="social-share">partager</div><form><input></form>` +
		`<script>alert(1)</script><iframe src="https://x.org"></iframe>` +
		`<a class="back-to-top" href="#">haut</a><button class="hamburger">≡</button>`

	out := r.RenderLegacyHTML(raw, "")
	assert.Contains(t, out, "Contenu.")
	assert.NotContains(t, out, "menu")
	assert.NotContains(t, out, "pied")
	assert.NotContains(t, out, "partager")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "iframe")
	assert.NotContains(t, out, "haut")
}

func TestRenderLegacyHTML_ExtractsContentContainer(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderLegacyHTML(`<div>hors article</div><article><p>Dedans.</p></article>`, "")
	assert.Contains(t, out, "Dedans.")
	assert.NotContains(t, out, "hors article")
}

func TestRenderLegacyHTML_FallsBackToBody(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.RenderLegacyHTML(`<div><p>Sans conteneur.</p></div>`, "")
	assert.Contains(t, out, "Sans conteneur.")
}

func TestRenderLegacyHTML_Empty(t *testing.T) {
	r := NewRenderer(testConfig())
	assert.Equal(t, "", r.RenderLegacyHTML("   ", "t"))
}

func TestSanitizeAuthorHTML_StripsExecutableContent(t *testing.T) {
	r := NewRenderer(testConfig())

	out := r.SanitizeAuthorHTML(`<p onclick="evil()">ok</p><script>alert(1)</script><img src="x" onerror="evil()">`)
	assert.Contains(t, out, "ok")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "onerror")
}

func TestRender_BlocksAuthoritativeOverLegacyHTML(t *testing.T) {
	r := NewRenderer(testConfig())

	rec := &models.Record{
		Title:  "T",
		HTML:   "<p>ancien corps</p>",
		Blocks: []models.Block{{Type: models.BlockParagraph, Text: "nouveau corps"}},
	}
	out := r.Render(rec)
	assert.Contains(t, out, "nouveau corps")
	assert.NotContains(t, out, "ancien corps")
}

func TestRender_LegacyWhenNoBlocks(t *testing.T) {
	r := NewRenderer(testConfig())

	rec := &models.Record{Title: "T", HTML: "<p>corps historique</p>"}
	assert.Contains(t, r.Render(rec), "corps historique")
}
