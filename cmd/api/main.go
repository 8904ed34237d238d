package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"teachmate/internal/assist"
	"teachmate/internal/config"
	"teachmate/internal/llm"
	"teachmate/internal/server"
)

var cli struct {
	Addr       string `help:"Listen address, overrides PORT" default:""`
	TextModel  string `help:"Text generation model, overrides TEXT_MODEL" default:""`
	ImageModel string `help:"Image generation model, overrides IMAGE_MODEL" default:""`
}

func main() {
	kong.Parse(&cli)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cli.Addr != "" {
		cfg.Addr = cli.Addr
	}
	if cli.TextModel != "" {
		cfg.TextModel = cli.TextModel
	}
	if cli.ImageModel != "" {
		cfg.ImageModel = cli.ImageModel
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey)
	if err != nil {
		log.Fatalf("create backend client: %v", err)
	}
	defer client.Close()

	svc := assist.New(client, assist.Models{Text: cfg.TextModel, Image: cfg.ImageModel})
	handler, err := server.NewHandler(svc)
	if err != nil {
		log.Fatalf("create handler: %v", err)
	}
	srv := server.New(cfg.Addr, handler.Routes())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
