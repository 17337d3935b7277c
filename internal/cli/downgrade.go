package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aptforge/aptdown/internal/logger"
	"github.com/aptforge/aptdown/pkg/apt"
	"github.com/aptforge/aptdown/pkg/download"
	"github.com/aptforge/aptdown/pkg/model"
	"github.com/aptforge/aptdown/pkg/pool"
	"github.com/aptforge/aptdown/pkg/resolve"
	"github.com/fatih/color"
)

type downgradeOptions struct {
	configPath string
	dryRun     bool
	logLevel   string
	noColor    bool
	noProgress bool
}

// newRunner is swapped in tests to fake the apt tooling.
var newRunner = apt.NewRunner

func runDowngrade(ctx context.Context, name string, version model.PackageVersion, opts downgradeOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Settings.LogLevel = opts.logLevel
	}
	logger.InitLogger(cfg.Settings.LogLevel)
	if opts.noColor {
		color.NoColor = true
	}

	runner := newRunner()
	env, err := apt.ReadEnvironment(ctx, runner)
	if err != nil {
		return err
	}
	sys := apt.NewSystem(runner, env)
	logger.Debug("Detected apt environment",
		logger.Fields{"arch": env.Arch, "cache_dir": env.CacheDir})

	dir, err := cacheDir(cfg)
	if err != nil {
		return err
	}
	index := pool.NewClient(cfg.Settings.HTTPTimeout, cfg.Mirror.SearchURL, cfg.PoolPrefix())
	dl := download.NewManager(cfg.Settings.HTTPTimeout, dir, !opts.noProgress)

	engine := &resolve.Engine{
		Installed:  sys,
		Candidates: resolve.NewAggregator(sys, index, env.Arch),
		Deps:       sys,
		DL:         dl,
		Hooks:      progressHooks(),
	}

	install, err := engine.Resolve(ctx, name, version)
	if err != nil {
		return err
	}
	if len(install) == 0 {
		fmt.Println("Nothing to do.")
		return nil
	}

	fmt.Printf("\nDowngrading %d package(s):\n", len(install))
	for _, pkg := range install {
		fmt.Printf("  %s\n", pkg)
	}
	fmt.Println()

	cmdline := sys.InstallCommand(install)
	_, _ = color.New(color.FgGreen, color.Bold).Fprintln(os.Stdout, cmdline)

	if opts.dryRun {
		return nil
	}
	return sys.Install(ctx, cmdline)
}

func progressHooks() resolve.Hooks {
	resolving := color.New(color.FgCyan)
	return resolve.Hooks{OnEvent: func(e resolve.Event) {
		switch e.Phase {
		case "resolving":
			resolving.Printf("Resolving %s\n", e.Msg)
		case "selected":
			fmt.Printf("  selected %s\n", e.Msg)
		case "satisfied":
			fmt.Printf("  already satisfied by installed %s\n", e.Msg)
		}
	}}
}
