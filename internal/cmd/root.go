package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/salmonumbrella/journal-cli/internal/config"
	"github.com/salmonumbrella/journal-cli/internal/datefmt"
	"github.com/salmonumbrella/journal-cli/internal/journal"
	"github.com/salmonumbrella/journal-cli/internal/output"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Global flags
var (
	journalDir  string
	outputFmt   string
	outputType  output.Format
	configFile  string
	queryExpr   string
	queryFile   string
	errorFmt    string
	quietFlag   bool
	resultLimit int
	resultSort  string
	resultDesc  bool
)

// store is the shared entry store, built from the resolved journal root.
var store *journal.Store

// weekStart is the resolved first column of the calendar week.
var weekStart = datefmt.Monday

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Personal journal from the command line",
	Long: `journal keeps dated markdown entries in a year/month directory tree
and renders calendar months as markdown tables.

Entries live at <dir>/<year>/<month>/<day>.md, e.g.
journal/2026/February/21st.md.

Environment Variables:
  JOURNAL_DIR  Journal root directory`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true

		skipConfigLoad := cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
		var cfg *config.Config
		if !skipConfigLoad {
			loadedCfg, err := loadConfigFromFlag()
			if err != nil {
				return formatConfigLoadError(err)
			}
			cfg = loadedCfg
		}

		// Output format selection: --output > config > default
		formatStr := outputFmt
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") && cfg != nil && strings.TrimSpace(cfg.OutputFormat) != "" {
			formatStr = strings.TrimSpace(cfg.OutputFormat)
		}
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") && !isTerminal(cmd.OutOrStdout()) {
			formatStr = "json"
		}
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		outputType = format
		outputFmt = string(format)

		// jq query
		if queryExpr != "" && queryFile != "" {
			return fmt.Errorf("use only one of --query or --query-file")
		}
		if queryFile != "" {
			loaded, err := readInputSource(queryFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			queryExpr = loaded
		}

		// Default quiet mode for non-interactive structured output
		if !flagChanged(cmd, "quiet") && !isTerminal(cmd.OutOrStdout()) && output.IsStructured(outputType) {
			quietFlag = true
		}

		ctx := cmd.Context()
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = output.WithFormat(ctx, outputType)
		ctx = output.WithQuery(ctx, queryExpr)
		ctx = output.WithLimit(ctx, resultLimit)
		ctx = output.WithSort(ctx, resultSort, resultDesc)
		ctx = output.WithQuiet(ctx, quietFlag)
		ctx = WithErrorFormat(ctx, errorFmt)
		cmd.SetContext(ctx)

		if err := validateErrorFormat(errorFmt); err != nil {
			return err
		}
		if effectiveErrorFormat(ctx) != "text" {
			cmd.SilenceUsage = true
		}

		// Resolve the journal root with consistent precedence:
		// flag > env > config > default.
		dir := strings.TrimSpace(journalDir)
		if !flagChanged(cmd, "dir") {
			dir = ""
		}
		if dir == "" {
			dir = strings.TrimSpace(envGet("JOURNAL_DIR"))
		}
		if dir == "" && cfg != nil {
			dir = strings.TrimSpace(cfg.JournalDir)
		}
		if dir == "" {
			dir = journal.DefaultDirName
		}

		ext := journal.DefaultExtension
		if cfg != nil && strings.TrimSpace(cfg.Extension) != "" {
			ext = strings.TrimSpace(cfg.Extension)
		}
		store = journal.NewStoreExt(dir, ext)

		weekStart = datefmt.Monday
		if cfg != nil && strings.EqualFold(strings.TrimSpace(cfg.WeekStart), "sunday") {
			weekStart = datefmt.Sunday
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printCommandError(rootCmd.Context(), err)
		return err
	}
	return nil
}

// GetStore returns the entry store for the resolved journal root
func GetStore() *journal.Store {
	return store
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() output.Format {
	if outputType != "" {
		return outputType
	}
	parsed, err := output.ParseFormat(outputFmt)
	if err != nil {
		return output.FormatText
	}
	return parsed
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("journal version %s (commit: %s, built: %s)\n", version, commit, date))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&journalDir, "dir", "d", "", "Journal root directory (env: JOURNAL_DIR)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format (text|json|ndjson|table|yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "format", "text", "Alias for --output")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&queryFile, "query-file", "", "Read jq expression from file (use - for stdin)")
	rootCmd.PersistentFlags().StringVar(&errorFmt, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().IntVar(&resultLimit, "result-limit", 0, "Limit number of results in output (0 = unlimited)")
	rootCmd.PersistentFlags().StringVar(&resultSort, "result-sort-by", "", "Sort output results by field")
	rootCmd.PersistentFlags().BoolVar(&resultDesc, "result-desc", false, "Sort output results in descending order")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/journal/config.yaml)")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
