package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logex-dev/logex/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand())

	return configCmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the discovered configuration file and effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Locate()
			if err != nil {
				return fmt.Errorf("locate config: %w", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			doc, err := config.Parse(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration file: %s\n\n", path)
			divider := strings.Repeat("-", 60)
			fmt.Fprintln(out, divider)
			fmt.Fprint(out, string(data))
			if !strings.HasSuffix(string(data), "\n") {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, divider)

			fmt.Fprintln(out)
			fmt.Fprintln(out, renderSettingsTable(effectiveSettings(doc)))
			return nil
		},
	}
}

// effectiveSettings resolves the default logger plus every named entry.
func effectiveSettings(doc *config.Document) []config.Settings {
	names := []string{config.DefaultName}
	for name := range doc.Loggers {
		if name != config.DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names[1:])

	settings := make([]config.Settings, 0, len(names))
	for _, name := range names {
		settings = append(settings, config.Merge(doc, name))
	}
	return settings
}

func newConfigInitCommand() *cobra.Command {
	var outputPath string
	var loggerName string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = config.ConfigFileName
			}
			abs, err := filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if err := config.WriteDefault(abs, loggerName, force); err != nil {
				if errors.Is(err, fs.ErrExist) {
					return fmt.Errorf("config file already exists at %s (use --force to overwrite)", abs)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path (default: ./logging.yaml)")
	cmd.Flags().StringVarP(&loggerName, "name", "n", "", "Logger name used for the default log file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(configPath)
			if path == "" {
				located, err := config.Locate()
				if err != nil {
					return fmt.Errorf("locate config: %w", err)
				}
				path = located
			} else {
				abs, err := filepath.Abs(path)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				path = abs
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Validating: %s\n", path)
			if _, err := config.ValidateFile(path); err != nil {
				return err
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file to validate (default: discovered)")
	return cmd
}
