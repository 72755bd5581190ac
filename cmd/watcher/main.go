package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shukan-hq/shukan-aws-digest/internal/config"
	"github.com/shukan-hq/shukan-aws-digest/internal/feed"
	"github.com/shukan-hq/shukan-aws-digest/internal/logger"
	"github.com/shukan-hq/shukan-aws-digest/internal/storage"
	"github.com/shukan-hq/shukan-aws-digest/internal/watch"
	"github.com/shukan-hq/shukan-aws-digest/pkg/httpclient"
	"github.com/shukan-hq/shukan-aws-digest/pkg/publishers"
)

const sourceID = "weekly-aws"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "watcher start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("watcher starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Std{}

	registry, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return fmt.Errorf("load publishers registry: %w", err)
	}

	pubs, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), registry.Enabled(), log)
	if err != nil {
		return fmt.Errorf("build publishers: %w", err)
	}
	if len(pubs) == 0 {
		logger.WarnObj("no publishers enabled", "publishers_file", cfg.PublishersFile)
	}
	fanout := publishers.NewFanout(pubs)

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		EntryTTL:        cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		return fmt.Errorf("open seen store: %w", err)
	}
	defer store.Close()

	source := feed.NewSource(cfg.FeedURL, httpclient.NewRestyClient(cfg.RequestTimeout))

	watcher := watch.New(sourceID, source, store, fanout, cfg.WatchInterval, log)
	if err := watcher.Run(ctx); err != nil {
		return fmt.Errorf("watcher run: %w", err)
	}

	return nil
}
