package main

import (
	"fmt"
	"os"

	"github.com/rgeddes/dupfind/pkg/dupfind/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage dupfind configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/dupfind/config.yaml (if set)
  2. ~/.config/dupfind/config.yaml

Environment variables can override config file settings using the DUPFIND_ prefix:
  DUPFIND_ALGORITHM=sha256
  DUPFIND_MAX_DEPTH=2
  DUPFIND_QUARANTINE_DIR=quarantine`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("algorithm:       %s\n", cfg.Algorithm)
	fmt.Printf("chunk_size:      %d\n", cfg.ChunkSize)
	fmt.Printf("interval:        %s\n", cfg.Interval)
	fmt.Printf("quarantine_dir:  %s\n", cfg.QuarantineDir)
	fmt.Printf("output:          %s\n", cfg.Output)
	fmt.Printf("extensions:      %v\n", cfg.Extensions)
	fmt.Printf("exclude:         %v\n", cfg.Exclude)
	fmt.Printf("max_depth:       %d\n", cfg.MaxDepth)
	fmt.Printf("max_size_mb:     %g\n", cfg.MaxSizeMB)
	fmt.Printf("logging.level:   %s\n", cfg.Logging.Level)
	fmt.Printf("logging.console: %t\n", cfg.Logging.Console)

	fmt.Println("\nEnvironment Overrides:")
	fmt.Println("----------------------")
	envVars := []string{
		"DUPFIND_ALGORITHM",
		"DUPFIND_CHUNK_SIZE",
		"DUPFIND_INTERVAL",
		"DUPFIND_QUARANTINE_DIR",
		"DUPFIND_OUTPUT",
		"DUPFIND_EXTENSIONS",
		"DUPFIND_EXCLUDE",
		"DUPFIND_MAX_DEPTH",
		"DUPFIND_MAX_SIZE_MB",
		"DUPFIND_LOGGING_LEVEL",
	}

	anyOverrides := false
	for _, name := range envVars {
		if val := os.Getenv(name); val != "" {
			fmt.Printf("%s=%s\n", name, val)
			anyOverrides = true
		}
	}
	if !anyOverrides {
		fmt.Println("(none)")
	}

	return nil
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := config.ConfigFilePath()

	if _, err := os.Stat(configPath); err == nil {
		printInfo("Config file already exists: %s", configPath)
		return nil
	}

	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	printInfo("Created default config file: %s", configPath)
	return nil
}

// runConfigPath shows the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFilePath())
	return nil
}
