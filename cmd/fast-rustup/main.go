package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtolnay/fast-rustup/internal/dist"
	"github.com/dtolnay/fast-rustup/internal/pipeline"
	"github.com/dtolnay/fast-rustup/internal/platform"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const defaultToolchain = "nightly-2024-01-01"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "fast-rustup [nightly-2024-01-01]",
	Short:         "Concurrent streaming installer for Rust nightly toolchains",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = Version
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config override")
}

func run(cmd *cobra.Command, args []string) error {
	begin := time.Now()

	toolchain := defaultToolchain
	if len(args) == 1 {
		toolchain = args[0]
	}

	date, err := dist.ParseToolchain(toolchain)
	if err != nil {
		return err
	}

	cfg := dist.DefaultConfig()
	if configPath != "" {
		cfg, err = dist.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	info, err := platform.NewDetector().Detect(cmd.Context())
	if err != nil {
		return err
	}
	target := info.Triple()

	home, err := dist.Home()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Downloading nightly-%s for %s\n", date, target)

	installer := &pipeline.Installer{
		Config:     cfg,
		Components: dist.Components(target),
	}
	if err := installer.Install(cmd.Context(), home, date, target); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "elapsed: %.3f sec\n", time.Since(begin).Seconds())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
