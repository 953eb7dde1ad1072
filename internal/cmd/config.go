package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/journal-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage CLI configuration stored in ~/.config/journal/config.yaml.

You can view, set, or unset config keys such as journal_dir, extension,
week_start, and output_format.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFromFlag()
		if err != nil {
			return formatConfigLoadError(err)
		}
		if structuredOutputRequested() {
			return printStructured(configOutput(cfg))
		}

		w := stdoutFromContext(cmd.Context())
		fmt.Fprintln(w, "Config:")
		fmt.Fprintf(w, "  journal_dir: %s\n", cfg.JournalDir)
		fmt.Fprintf(w, "  extension: %s\n", cfg.Extension)
		fmt.Fprintf(w, "  week_start: %s\n", cfg.WeekStart)
		fmt.Fprintf(w, "  output_format: %s\n", cfg.OutputFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Unset a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported configuration keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := supportedConfigKeys()
		sort.Strings(keys)

		if structuredOutputRequested() {
			return printStructured(keys)
		}

		w := stdoutFromContext(cmd.Context())
		fmt.Fprintln(w, "Supported keys:")
		for _, key := range keys {
			fmt.Fprintf(w, "  %s\n", key)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if structuredOutputRequested() {
			return printStructured(map[string]string{"path": path})
		}
		fmt.Fprintln(stdoutFromContext(cmd.Context()), path)
		return nil
	},
}

func configPath() (string, error) {
	if strings.TrimSpace(configFile) != "" {
		return configFile, nil
	}
	return config.DefaultConfigPath()
}

func supportedConfigKeys() []string {
	return []string{
		"journal_dir",
		"extension",
		"week_start",
		"output_format",
	}
}

func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "journal_dir":
		cfg.JournalDir = value
	case "extension":
		cfg.Extension = value
	case "week_start":
		switch strings.ToLower(value) {
		case "monday", "sunday":
			cfg.WeekStart = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid week_start %q (expected monday|sunday)", value)
		}
	case "output_format":
		cfg.OutputFormat = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func clearConfigValue(cfg *config.Config, key string) error {
	switch key {
	case "journal_dir":
		cfg.JournalDir = ""
	case "extension":
		cfg.Extension = ""
	case "week_start":
		cfg.WeekStart = ""
	case "output_format":
		cfg.OutputFormat = ""
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))
	value := strings.TrimSpace(args[1])

	cfg, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}

	if err := applyConfigValue(cfg, key, value); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if structuredOutputRequested() {
		return printStructured(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}

	fmt.Fprintf(stdoutFromContext(cmd.Context()), "Updated %s\n", key)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))

	cfg, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}

	if err := clearConfigValue(cfg, key); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if structuredOutputRequested() {
		return printStructured(map[string]string{
			"status": "unset",
			"key":    key,
		})
	}

	fmt.Fprintf(stdoutFromContext(cmd.Context()), "Unset %s\n", key)
	return nil
}

func configOutput(cfg *config.Config) map[string]interface{} {
	return map[string]interface{}{
		"journal_dir":   cfg.JournalDir,
		"extension":     cfg.Extension,
		"week_start":    cfg.WeekStart,
		"output_format": cfg.OutputFormat,
	}
}
