package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgeddes/dupfind/pkg/dupfind/checksum"
	"github.com/rgeddes/dupfind/pkg/dupfind/config"
	"github.com/rgeddes/dupfind/pkg/dupfind/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "dupfind <folder>",
		Short: "Find duplicate files and quarantine the extra copies",
		Long: `Dupfind scans a directory tree, groups files by content checksum, and
moves every duplicate copy but the first into a quarantine folder.

Examples:
  dupfind ~/Downloads                      # Scan and quarantine duplicates
  dupfind --extensions pdf,jpg ~/docs      # Limit to certain extensions
  dupfind --max-depth 2 --dry-run .        # Preview without moving anything
  dupfind --algorithm sha256 -o json .     # Stronger hash, JSON report`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/dupfind/config.yaml)")
	rootCmd.PersistentFlags().StringP("algorithm", "a", config.DefaultAlgorithm,
		fmt.Sprintf("checksum algorithm (%s)", strings.Join(checksum.Supported(), ", ")))
	rootCmd.PersistentFlags().Int("max-depth", 0, "maximum depth to traverse (0=unlimited)")
	rootCmd.PersistentFlags().StringSliceP("extensions", "e", nil, "limit to files with these extensions (e.g., pdf,.jpg)")
	rootCmd.PersistentFlags().Float64("max-size-mb", 0, "maximum file size to process in MB (0=unlimited)")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "glob patterns for paths to skip")
	rootCmd.PersistentFlags().Duration("interval", 0, "progress reporting period (default 5s)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "report format (plain, pretty, json, yaml)")
	rootCmd.PersistentFlags().String("quarantine-dir", config.DefaultQuarantineDir, "quarantine subdirectory name")
	rootCmd.PersistentFlags().Int("chunk-size", config.DefaultChunkSize, "hashing read buffer size in bytes")
	rootCmd.PersistentFlags().BoolP("no-relocate", "n", false, "report duplicates without moving them")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "plan moves without touching the filesystem")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "mirror logs to stderr")

	_ = viper.BindPFlag("algorithm", rootCmd.PersistentFlags().Lookup("algorithm"))
	_ = viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	_ = viper.BindPFlag("extensions", rootCmd.PersistentFlags().Lookup("extensions"))
	_ = viper.BindPFlag("max_size_mb", rootCmd.PersistentFlags().Lookup("max-size-mb"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("interval", rootCmd.PersistentFlags().Lookup("interval"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quarantine_dir", rootCmd.PersistentFlags().Lookup("quarantine-dir"))
	_ = viper.BindPFlag("chunk_size", rootCmd.PersistentFlags().Lookup("chunk-size"))
	_ = viper.BindPFlag("no_relocate", rootCmd.PersistentFlags().Lookup("no-relocate"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads the config file and environment variables, then brings
// up logging.
func initConfig() {
	// An explicit --config file overrides the search paths AttachSources
	// registers; env bindings apply either way.
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	config.AttachSources(viper.GetViper())
	config.SetDefaults(viper.GetViper())

	_ = viper.ReadInConfig()

	if err := logging.Init(logging.Config{
		Level:   viper.GetString("logging.level"),
		Path:    viper.GetString("logging.path"),
		Console: viper.GetBool("verbose"),
	}); err != nil {
		printError("failed to initialize logging: %v", err)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message unless quiet mode is enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
