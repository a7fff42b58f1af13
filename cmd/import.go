package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"focode-importer/core/config"
	"focode-importer/core/database"
	"focode-importer/core/logger"
	"focode-importer/core/storage"
	"focode-importer/feature/articles"
	"focode-importer/feature/importer"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	importInput  string
	importObject string
	importDryRun bool
	importLimit  int
)

// importCmd runs the ingestion pipeline over one export.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a crawler export into the article database",
	Long: `Import reads a JSONL crawler export, normalizes each record and
reconciles it against the article database keyed by slug.

The export is read either from a local file or straight from the bucket the
crawler uploads to. Re-running an import over the same export is idempotent:
the second run only produces updates.

Examples:
  # Import from a local export file
  import --input focode_export.jsonl

  # Import an export straight from the crawler bucket
  import --object exports/focode_export.jsonl

  # Import the newest export under a bucket prefix
  import --object exports/

  # Report what a run would do without writing
  import --input focode_export.jsonl --dry-run

  # Smoke-test the first 50 records
  import --input focode_export.jsonl --limit 50`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importInput, "input", "", "Path to a local export file")
	importCmd.Flags().StringVar(&importObject, "object", "", "Object name of an export in the storage bucket (trailing slash selects the newest export under that prefix)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Walk the pipeline without writing to the database")
	importCmd.Flags().IntVar(&importLimit, "limit", 0, "Stop after this many records (0 = no limit)")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRun(l, uuid.NewString())

	// Open the input before touching the database: a missing input aborts
	// the run before any record is processed.
	in, err := openInput(ctx, cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	store := articles.NewStore(db)
	if err := store.AutoMigrate(); err != nil {
		return err
	}

	identity, err := store.EnsureSystemUser(ctx)
	if err != nil {
		return err
	}

	engine, err := importer.NewEngine(cfg.Importer, store, identity, l)
	if err != nil {
		return fmt.Errorf("failed to build import engine: %w", err)
	}

	if importDryRun {
		l.Info("Dry-run mode: no changes will be made")
	}
	l.Info("Starting import")

	stats, err := engine.Run(ctx, importer.NewRecordScanner(in), importer.Options{
		DryRun: importDryRun,
		Limit:  importLimit,
	})
	if err != nil {
		return fmt.Errorf("import aborted by input error: %w", err)
	}

	l.Info("Import finished",
		zap.Int("processed", stats.Processed),
		zap.Int("created", stats.Created),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped),
	)

	return nil
}

// openInput returns the export stream: a local file with --input, a bucket
// object with --object.
func openInput(ctx context.Context, cfg *config.Config) (io.ReadCloser, error) {
	switch {
	case importInput != "" && importObject != "":
		return nil, fmt.Errorf("--input and --object are mutually exclusive")

	case importInput != "":
		f, err := os.Open(importInput)
		if err != nil {
			return nil, fmt.Errorf("failed to open export file: %w", err)
		}
		return f, nil

	case importObject != "":
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}

		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check export bucket: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("export bucket %q does not exist", cfg.Storage.Bucket)
		}

		// A trailing slash names a prefix rather than an object: pick the
		// newest export the crawler uploaded under it.
		objectName := importObject
		if strings.HasSuffix(objectName, "/") {
			objectName, err = storage.LatestObject(ctx, client, cfg.Storage.Bucket, objectName)
			if err != nil {
				return nil, err
			}
		}

		rc, err := client.GetObject(ctx, cfg.Storage.Bucket, objectName, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to open export object %q: %w", objectName, err)
		}
		return rc, nil

	default:
		return nil, fmt.Errorf("either --input or --object is required")
	}
}
