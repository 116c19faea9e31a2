// dartprep prepares DART simulation inputs from a JSON configuration,
// a tree position file, and a directory of 3D tree models.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dart-prep/dartprep/internal/config"
	"github.com/dart-prep/dartprep/internal/generator"
	"github.com/dart-prep/dartprep/internal/storage"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var logger *zap.Logger

const defaultConfigPath = "config.json"

var rootCmd = &cobra.Command{
	Use:   "dartprep",
	Short: "Generate DART simulation input files",
	Long: `dartprep generates the XML input files the DART radiative-transfer
simulator consumes (coeff_diff.xml, object_3d.xml, sequence.xml) and
patches maket.xml, driven by a JSON configuration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Encoding = "console"
		var err error
		logger, err = zcfg.Build(zap.WithCaller(false))
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var prepareCmd = &cobra.Command{
	Use:   "prepare [config]",
	Short: "Run the full preparation pipeline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configPathFromArgs(args)
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		report, err := generator.NewPipeline(configPath, cfg, logger).Run()
		if report != nil {
			for _, step := range report.Steps {
				line := fmt.Sprintf("  %-12s %s", step.Name, step.Status)
				if step.Error != "" {
					line += ": " + step.Error
				}
				fmt.Println(line)
			}
			fmt.Printf("run %s: %d trees, %d artifacts\n",
				report.RunID, report.TreeCount, len(report.Artifacts))
		}
		return err
	},
}

var coeffDiffCmd = &cobra.Command{
	Use:   "coeff-diff [config]",
	Short: "Generate coeff_diff.xml only",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPathFromArgs(args))
		if err != nil {
			return err
		}
		return generator.NewCoeffDiff(cfg, storage.NewOutputStore(), logger).Run()
	},
}

var objectsCmd = &cobra.Command{
	Use:   "objects [config]",
	Short: "Generate object_3d.xml only",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPathFromArgs(args))
		if err != nil {
			return err
		}
		return generator.NewObjects(cfg, storage.NewOutputStore(), logger).Run()
	},
}

var maketCmd = &cobra.Command{
	Use:   "maket [config]",
	Short: "Patch maket.xml ground property links",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPathFromArgs(args))
		if err != nil {
			return err
		}
		return generator.NewMaket(cfg, storage.NewOutputStore(), logger).Run()
	},
}

var sequenceCmd = &cobra.Command{
	Use:   "sequence [config]",
	Short: "Generate sequence.xml only",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPathFromArgs(args))
		if err != nil {
			return err
		}
		return generator.NewSequence(cfg, storage.NewOutputStore(), logger).Run()
	},
}

var checkSoilsCmd = &cobra.Command{
	Use:   "check-soils [config]",
	Short: "Validate the soil-factor directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPathFromArgs(args))
		if err != nil {
			return err
		}
		valid, err := generator.CheckSoils(cfg, logger)
		if err != nil {
			return err
		}
		fmt.Printf("%d valid soil folder(s)\n", len(valid))
		for _, folder := range valid {
			fmt.Printf("  - %s\n", folder.Name)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dartprep %s (built %s)\n", Version, BuildTime)
	},
}

func configPathFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultConfigPath
}

func main() {
	rootCmd.AddCommand(prepareCmd, coeffDiffCmd, objectsCmd, maketCmd, sequenceCmd, checkSoilsCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
