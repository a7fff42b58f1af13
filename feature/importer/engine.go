package importer

import (
	"context"
	"strings"
	"unicode/utf8"

	articles "focode-importer/feature/articles/models"
	"focode-importer/feature/importer/models"

	"go.uber.org/zap"
)

// slugDenylist holds slugs that must never become articles: the magazine
// landing pages the crawler picks up alongside real content.
var slugDenylist = map[string]struct{}{
	"focodemag": {},
	"home":      {},
}

// sentinelTitle is the site-wide fallback title the crawler reports for
// pages without one. Records carrying it are navigation shells, not articles.
const sentinelTitle = "FocodeMagazine"

// ArticleStore is the persistence surface the engine reconciles against.
// *articles.Store satisfies it; tests inject doubles.
type ArticleStore interface {
	FindBySlug(ctx context.Context, slug string) (*articles.Article, error)
	Create(ctx context.Context, article *articles.Article) error
	Update(ctx context.Context, article *articles.Article) error
}

// Stats are the aggregate counts of one run.
// Processed = Created + Updated + Skipped always holds.
type Stats struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`
}

// Options controls run behavior.
type Options struct {
	// DryRun walks the full pipeline, store lookups included, but performs
	// no writes. The returned stats describe what a real run would do.
	DryRun bool

	// Limit stops the run after this many records; zero means no limit.
	Limit int
}

// Engine reconciles crawler records against the article store, one record
// at a time in source order. Per-record failures are contained here; a bad
// record never aborts the run.
type Engine struct {
	cfg       Config
	store     ArticleStore
	renderer  *Renderer
	extractor *Extractor
	identity  *articles.User
	logger    *zap.Logger
}

// NewEngine wires the pipeline components around an injected store and the
// identity that imported articles are attributed to.
func NewEngine(cfg Config, store ArticleStore, identity *articles.User, logger *zap.Logger) (*Engine, error) {
	extractor, err := NewExtractor(cfg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:       cfg,
		store:     store,
		renderer:  NewRenderer(cfg),
		extractor: extractor,
		identity:  identity,
		logger:    logger,
	}, nil
}

// Run consumes the scanner to exhaustion and returns the run counts. The
// only error it returns is a stream read failure; everything per-record is
// absorbed into the skipped count.
func (e *Engine) Run(ctx context.Context, sc *RecordScanner, opts Options) (Stats, error) {
	var stats Stats

	for sc.Scan() {
		if opts.Limit > 0 && stats.Processed >= opts.Limit {
			break
		}
		stats.Processed++
		e.reconcile(ctx, sc.Record(), opts, &stats)
	}

	if err := sc.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (e *Engine) reconcile(ctx context.Context, rec *models.Record, opts Options, stats *Stats) {
	slug := e.recordSlug(rec)
	title := strings.TrimSpace(rec.Title)
	if slug == "" || title == "" {
		e.logger.Debug("record skipped: missing slug or title",
			zap.String("slug", slug), zap.String("title", title))
		stats.Skipped++
		return
	}

	if _, denied := slugDenylist[slug]; denied || title == sentinelTitle {
		e.logger.Debug("record skipped: excluded from ingestion", zap.String("slug", slug))
		stats.Skipped++
		return
	}

	body := e.renderer.Render(rec)
	if utf8.RuneCountInString(body) < e.cfg.MinHTMLLength {
		e.logger.Debug("record skipped: rendered body too short",
			zap.String("slug", slug), zap.Int("length", utf8.RuneCountInString(body)))
		stats.Skipped++
		return
	}

	image := e.extractor.CoverImage(rec)
	summary := e.extractor.Summary(rec.Blocks)
	date := InferDate(rec, slug)

	category := strings.TrimSpace(rec.Category)
	if category == "" {
		category = e.cfg.DefaultCategory
	}

	existing, err := e.store.FindBySlug(ctx, slug)
	if err != nil {
		e.logger.Warn("record skipped: store lookup failed",
			zap.String("slug", slug), zap.Error(err))
		stats.Skipped++
		return
	}

	if existing != nil {
		existing.Title = title
		existing.HTML = body
		existing.Image = image
		existing.Date = date
		existing.Category = category
		existing.Published = true
		existing.EditorID = e.identity.ID
		// A re-import with no derivable summary keeps whatever an editor
		// already wrote.
		if summary != "" {
			existing.Summary = summary
		}

		if !opts.DryRun {
			if err := e.store.Update(ctx, existing); err != nil {
				e.logger.Warn("record skipped: update failed",
					zap.String("slug", slug), zap.Error(err))
				stats.Skipped++
				return
			}
		}
		stats.Updated++
		return
	}

	article := &articles.Article{
		Slug:      slug,
		Title:     title,
		HTML:      body,
		Image:     image,
		Summary:   summary,
		Date:      date,
		Category:  category,
		Published: true,
		AuthorID:  e.identity.ID,
		EditorID:  e.identity.ID,
	}

	if !opts.DryRun {
		if err := e.store.Create(ctx, article); err != nil {
			e.logger.Warn("record skipped: create failed",
				zap.String("slug", slug), zap.Error(err))
			stats.Skipped++
			return
		}
	}
	stats.Created++
}

// recordSlug derives the storage key, preferring the explicit slug over the
// final and original URLs.
func (e *Engine) recordSlug(rec *models.Record) string {
	for _, raw := range []string{rec.Slug, rec.FinalURL, rec.SourceURL} {
		if slug := NormalizeSlug(raw); slug != "" {
			return slug
		}
	}
	return ""
}
