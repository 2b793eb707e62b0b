package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"tubewatch/pkg/bot"
	"tubewatch/pkg/config"
	"tubewatch/pkg/quota"
	"tubewatch/pkg/repository"
	"tubewatch/pkg/scheduler"
	"tubewatch/pkg/subs"
	"tubewatch/pkg/youtube"
	"tubewatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Telegram.Token, cfg.YouTube.APIKey)

	log.Printf("[INFO] starting tubewatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repos.Close()

	resetHour, resetMinute, err := config.ParseResetTime(cfg.Quota.ResetTime)
	if err != nil {
		return fmt.Errorf("parse quota reset time: %w", err)
	}
	loc, err := time.LoadLocation(cfg.Quota.ResetTZ)
	if err != nil {
		return fmt.Errorf("load quota timezone: %w", err)
	}

	allocator, err := quota.NewAllocator(ctx, repos.Quota, quota.Config{
		DailyBudget: cfg.Quota.DailyBudget,
		ResetHour:   resetHour,
		ResetMinute: resetMinute,
		Location:    loc,
	})
	if err != nil {
		return fmt.Errorf("init quota allocator: %w", err)
	}

	client := youtube.NewClient(youtube.Config{
		BaseURL:         cfg.YouTube.BaseURL,
		APIKey:          cfg.YouTube.APIKey,
		PageSize:        cfg.YouTube.PageSize,
		Timeout:         cfg.YouTube.Timeout,
		MinCallInterval: cfg.YouTube.MinCallInterval,
	})
	resolver := youtube.NewResolver(cfg.YouTube.Timeout)

	manager := subs.NewManager(repos.Source, repos.Subscription, resolver)

	tgBot, err := bot.New(bot.Config{
		Token:       cfg.Telegram.Token,
		PollTimeout: cfg.Telegram.PollTimeout,
		Service:     manager,
		Quota:       allocator,
	})
	if err != nil {
		return fmt.Errorf("init telegram bot: %w", err)
	}

	sched := scheduler.New(scheduler.Config{
		Sources:         repos.Source,
		Subscriptions:   repos.Subscription,
		Ledger:          repos.Ledger,
		Quota:           allocator,
		Client:          client,
		Notifier:        tgBot,
		PollInterval:    cfg.Schedule.PollInterval,
		MaxPagesPerPass: cfg.Schedule.MaxPagesPerCycle,
		MaxWorkers:      cfg.Schedule.MaxWorkers,
		SendRetries:     cfg.Schedule.SendRetries,
		SendBackoff:     cfg.Schedule.SendBackoff,
	})

	sched.Start(ctx)
	defer sched.Stop()

	if cfg.Server.Enabled {
		srv := server.New(cfg, manager, allocator, sched, revision, debug)
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Printf("[WARN] status server failed: %v", err)
			}
		}()
	}

	tgBot.Start(ctx) // blocks until ctx is cancelled
	tgBot.Stop()
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
