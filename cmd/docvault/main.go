// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/docvault"
	"github.com/poiesic/docvault/ai"
	"github.com/poiesic/docvault/ai/mock"
	"github.com/poiesic/docvault/core"
	"github.com/poiesic/docvault/ingestion"
	"github.com/poiesic/docvault/reembed"
	"github.com/poiesic/docvault/server"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "docvault",
		Usage: "Departmental document vault with hybrid keyword and semantic search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serveCommand,
				Flags: append(libraryFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":5001",
					},
					&cli.StringFlag{
						Name:  "uploads",
						Usage: "Directory for uploaded files",
						Value: "uploads",
					},
					&cli.DurationFlag{
						Name:  "session-ttl",
						Usage: "Session lifetime",
						Value: server.DefaultSessionTTL,
					},
				),
			},
			{
				Name:      "ingest",
				Usage:     "Ingest a file or directory of files",
				ArgsUsage: "<path>",
				Action:    ingestCommand,
				Flags: append(libraryFlags(),
					&cli.StringFlag{
						Name:  "department",
						Usage: "Department owning the ingested documents",
						Value: "Engineering",
					},
					&cli.StringFlag{
						Name:  "user",
						Usage: "Username recorded as uploader",
						Value: "admin",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for directory ingestion",
						Value: 0,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search stored documents",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(libraryFlags(),
					&cli.StringFlag{
						Name:  "department",
						Usage: "Department of the searching user",
						Value: core.DepartmentAdmin,
					},
					&cli.StringFlag{
						Name:  "user",
						Usage: "Username of the searching user",
						Value: "admin",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of hits to print",
						Value: 10,
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all documents with new embeddings",
				Action: reembedCommand,
				Flags: append(libraryFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// libraryFlags are the flags shared by every command that opens the vault.
func libraryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.BoolFlag{
			Name:  "mock-ai",
			Usage: "Use deterministic in-process AI services instead of an embedding server",
		},
	}
}

// openLibrary builds the Library from shared flags.
func openLibrary(c *cli.Context) (*docvault.Library, error) {
	opts := []docvault.LibraryOption{}

	if c.Bool("mock-ai") {
		opts = append(opts, docvault.WithProvider(mock.NewMockProvider()))
	} else {
		aiConfig := ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)
		if err := aiConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}
		opts = append(opts, docvault.WithAIConfig(aiConfig))
	}

	lib, err := docvault.NewLibrary(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return lib, nil
}

func serveCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	pipeline, err := lib.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	searcher, err := lib.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	srv, err := server.New(server.Dependencies{
		Documents:  lib.DocumentRepository(),
		Pipeline:   pipeline,
		Searcher:   searcher,
		UploadDir:  c.String("uploads"),
		SessionTTL: c.Duration("session-ttl"),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(c.String("addr"))
}

func ingestCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("path to a file or directory is required")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	pipelineOpts := []ingestion.Option{}
	if workers := c.Int("workers"); workers > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(workers))
	}
	pipeline, err := lib.NewIngestionPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	uploader := core.User{
		Username:   c.String("user"),
		Department: c.String("department"),
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if info.IsDir() {
		docs, err := pipeline.IngestDir(ctx, path, uploader)
		if err != nil {
			return fmt.Errorf("directory ingestion failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Ingested %d documents from %s\n", len(docs), path)
		return nil
	}

	doc, err := pipeline.IngestFile(ctx, path, uploader)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Ingested %q (id=%d, title=%q, category=%s)\n",
		doc.Filename, doc.Id, doc.Title, doc.Category)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	searcher, err := lib.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	user := core.User{
		Username:   c.String("user"),
		Department: c.String("department"),
	}

	results, err := searcher.Search(context.Background(), user, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if limit := c.Int("limit"); limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for i, result := range results {
		doc := result.Document
		fmt.Printf("%2d. [%.2f] %s — %s (%s, uploaded by %s)\n",
			i+1, result.Score, doc.Filename, doc.Title, doc.Category, doc.UploadedBy)
		fmt.Printf("    %s\n", result.Snippet)
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	config := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := lib.NewReembedder(config, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	if !c.Bool("mock-ai") {
		fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
		fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	}
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(context.Background()); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
