package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog"

	"github.com/tracker-tv/github-version-policy/internal/config"
	"github.com/tracker-tv/github-version-policy/internal/github"
	"github.com/tracker-tv/github-version-policy/internal/reconciler"
	"github.com/tracker-tv/github-version-policy/internal/report"
	"github.com/tracker-tv/github-version-policy/internal/rules"
	"github.com/tracker-tv/github-version-policy/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := clog.WithLogger(context.Background(), clog.New(slog.NewTextHandler(os.Stderr, nil)))

	ghClient, err := github.New(cfg.Token, cfg.Owner(), cfg.Name(), cfg.APIBase)
	if err != nil {
		log.Fatalf("failed to build GitHub client: %v", err)
	}

	state, err := snapshot.Fetch(ctx, ghClient, cfg)
	if err != nil {
		log.Fatalf("failed to fetch repository state: %v", err)
	}

	rules.Evaluate(ctx, state, cfg, rules.All())

	reconciler.Reconcile(ctx, ghClient, state, cfg.AutoFix)

	report.Print(os.Stdout, state)

	code := reconciler.ExitCode(state)
	if code != 0 {
		fmt.Println("version policy check failed")
	}
	os.Exit(code)
}
