package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/video-insight/internal/cli"
	"github.com/nguyentantai21042004/video-insight/internal/config"
	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/models"
	"github.com/nguyentantai21042004/video-insight/internal/normalizer"
	"github.com/nguyentantai21042004/video-insight/internal/persister"
	"github.com/nguyentantai21042004/video-insight/internal/processor"
	"github.com/nguyentantai21042004/video-insight/internal/server"
	"github.com/nguyentantai21042004/video-insight/internal/source"
	"github.com/nguyentantai21042004/video-insight/internal/speech"
	"github.com/nguyentantai21042004/video-insight/internal/summarizer"
	"github.com/nguyentantai21042004/video-insight/internal/watcher"
	"github.com/nguyentantai21042004/video-insight/pkg/executor"
	"github.com/nguyentantai21042004/video-insight/pkg/fsutil"
)

const usage = `Usage: insight [-config config.yaml] [command]

Commands:
  menu      interactive session (default)
  analyze   analyze one video: analyze -url URL [-source en] [-target pt] [-style structured]
  serve     local browser form
  watch     process *.url job files dropped into the inbox directory
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	command := "menu"
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Video Insight (Google Gemini)")
	log.Info(ctx, "========================================")

	if err := fsutil.EnsureDirs(cfg.Paths.Temp, cfg.Paths.Output); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}
	if removed, err := fsutil.CleanDir(cfg.Paths.Temp); err != nil {
		log.Warn(ctx, "Failed to clean %s: %v", cfg.Paths.Temp, err)
	} else if len(removed) > 0 {
		log.Info(ctx, "Removed %d leftover temp files", len(removed))
	}

	apiKey, err := resolveAPIKey(command)
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	client, err := gemini.New(ctx, apiKey, log)
	if err != nil {
		log.Error(ctx, "Failed to create Gemini client: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	proc := processor.New(processor.Components{
		Resolver:   source.New(cfg.Tools.YtDlp, cfg.Paths.Temp, exec, log),
		Normalizer: normalizer.New(cfg, exec, log),
		Speech:     speech.New(client, cfg.Gemini.TranscribeModel, cfg.MaxUploadBytes(), log),
		Summarizer: summarizer.New(client, cfg.Gemini.Model, log),
		Persister:  persister.New(cfg.Paths.Output, cfg.Output.Docx, log),
	}, log)

	switch command {
	case "menu":
		err = cli.New(proc, cfg, os.Stdin, os.Stdout, log).Run(ctx)
	case "analyze":
		err = analyze(ctx, proc, args)
	case "serve":
		err = server.New(cfg.Server.Addr, proc, log).Run(ctx)
	case "watch":
		err = watch(ctx, cfg, proc, log)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "%s failed: %v", command, err)
		os.Exit(1)
	}
}

// resolveAPIKey reads the credential from the environment and, for the
// interactive menu only, prompts for it.
func resolveAPIKey(command string) (string, error) {
	key, err := config.APIKey()
	if err == nil {
		return key, nil
	}
	if command != "menu" {
		return "", err
	}

	key, promptErr := cli.PromptAPIKey(os.Stdin, os.Stdout)
	if promptErr != nil || key == "" {
		return "", err
	}
	return key, nil
}

func analyze(ctx context.Context, proc processor.Processor, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	url := fs.String("url", "", "video URL")
	src := fs.String("source", "", "audio language (pt, en, es, fr); empty to auto-detect")
	dst := fs.String("target", "", "output language (pt, en, es, fr); empty to keep the audio language")
	style := fs.String("style", string(models.StyleStructured), "summary style: structured, bullet_points or paragraph")
	if err := fs.Parse(args); err != nil {
		return err
	}

	directive, err := models.NewLanguageDirective(*src, *dst)
	if err != nil {
		return err
	}

	run, err := proc.Run(ctx, processor.Request{
		URL:       *url,
		Directive: directive,
		Style:     models.ParseSummaryStyle(*style),
	})
	if err != nil {
		return err
	}

	cli.PrintResult(os.Stdout, run)
	return nil
}

func watch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	if err := fsutil.EnsureDirs(cfg.Paths.Inbox); err != nil {
		return err
	}

	handler := func(ctx context.Context, job watcher.Job) error {
		run, err := proc.Run(ctx, processor.Request{
			URL:       job.URL,
			Directive: job.Directive,
			Style:     job.Style,
		})
		if err != nil {
			return err
		}
		log.Info(ctx, "Report: %s", run.Outputs.Report)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")
	return w.Start(ctx)
}
