package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smtchahal/wikipedia-philosophy/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/wikipedia-philosophy.yml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Initialize creates a new wikipedia-philosophy.yml configuration file in
the current directory.

The generated file includes:
- Commented examples for every supported key
- Default values for the MediaWiki endpoint and timeouts
- Documentation for all available options

Examples:
  # Create wikipedia-philosophy.yml in current directory
  wikipedia-philosophy init

  # Create config file at a specific path
  wikipedia-philosophy init -o myconfig.yml

  # Force overwrite existing file
  wikipedia-philosophy init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/wikipedia-philosophy.yml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write configuration file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Created configuration file: %s\n", outputPath)
	fmt.Println("\nEdit this file to configure service settings such as:")
	fmt.Println("  - MediaWiki endpoint and User-Agent")
	fmt.Println("  - Request timeout and politeness delay")
	fmt.Println("  - SOCKS5 proxy address")

	return nil
}
