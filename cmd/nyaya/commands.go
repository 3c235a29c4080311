package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spektr-org/nyaya/config"
	"github.com/spektr-org/nyaya/logging"
)

// --- Global Command Variables ---
var (
	configPath string
	cfg        config.Config

	// query / describe
	datasetName string
	queryKind   string
	groupColumn string
	valueColumn string
	queryYear   int
	queryState  string
	queryLimit  int
	format      string
	outFile     string

	// predict
	evidenceStrength string
	pastRecord       string

	// prep
	caseRows int
	caseSeed uint64

	rootCmd = &cobra.Command{
		Use:     "nyaya",
		Short:   "Crime statistics dashboards, IPC section lookup and case scoring",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			if _, err := logging.Setup(cfg.Logging); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			slog.Debug("configuration loaded", "path", configPath, "data_dir", cfg.Data.Dir)
			return nil
		},
		SilenceUsage: true,
	}

	// --- Server ---
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Load the data directory and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe, // Defined in cmd_serve.go
	}

	// --- Datasets ---
	queryCmd = &cobra.Command{
		Use:   "query",
		Short: "Aggregate a crime dataset by region, by year, or into category totals",
		Example: `  nyaya query --dataset ipc --kind region --year 2012 --limit 5
  nyaya query --dataset ipc --kind region --group DISTRICT --state KERALA --format csv
  nyaya query --dataset women --kind year --format text
  nyaya query --dataset ipc --kind totals --year 2011 --format pretty`,
		Args: cobra.NoArgs,
		RunE: runQuery, // Defined in cmd_query.go
	}
	describeCmd = &cobra.Command{
		Use:   "describe [csv file]",
		Short: "Profile a CSV file's columns (roles, cardinality, hierarchies)",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe, // Defined in cmd_query.go
	}

	// --- Legal assistant ---
	searchCmd = &cobra.Command{
		Use:   "search [query]",
		Short: "Search IPC sections by number, title or text",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch, // Defined in cmd_legal.go
	}
	explainCmd = &cobra.Command{
		Use:   "explain [section]",
		Short: "Explain one IPC section in plain language",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplain, // Defined in cmd_legal.go
	}
	predictCmd = &cobra.Command{
		Use:   "predict",
		Short: "Score a case from evidence strength and past record",
		Args:  cobra.NoArgs,
		RunE:  runPredict, // Defined in cmd_legal.go
	}

	// --- Data preparation ---
	extractCmd = &cobra.Command{
		Use:   "extract-sections [text file]",
		Short: "Extract IPC sections from the plain text of the code into JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtractSections, // Defined in cmd_prep.go
	}
	generateCmd = &cobra.Command{
		Use:   "generate-cases",
		Short: "Generate a synthetic CSV of cases for experiments",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCases, // Defined in cmd_prep.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	queryCmd.Flags().StringVar(&datasetName, "dataset", "ipc", "Dataset to query: ipc or women")
	queryCmd.Flags().StringVar(&queryKind, "kind", "region", "Aggregation: region, year or totals")
	queryCmd.Flags().StringVar(&groupColumn, "group", "", "Column to group by (default: the dataset's state column)")
	queryCmd.Flags().StringVar(&valueColumn, "value", "", "Column to sum (default: the dataset's total column)")
	queryCmd.Flags().IntVar(&queryYear, "year", 0, "Only rows for this year")
	queryCmd.Flags().StringVar(&queryState, "state", "", "Only rows for this state (exact match)")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "Keep only the first N groups (0 = all)")

	for _, c := range []*cobra.Command{queryCmd, describeCmd, searchCmd, explainCmd, predictCmd} {
		c.Flags().StringVar(&format, "format", "pretty", "Output format: json, pretty, text, csv")
		c.Flags().StringVarP(&outFile, "out", "o", "", "Write output to file instead of stdout")
	}

	predictCmd.Flags().StringVar(&evidenceStrength, "evidence", "Moderate", "Evidence strength: Strong, Moderate or Weak")
	predictCmd.Flags().StringVar(&pastRecord, "past-record", "None", "Past record: Serious, Minor or None")

	extractCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write JSON to file instead of stdout")

	generateCmd.Flags().IntVar(&caseRows, "rows", 100, "Number of cases to generate")
	generateCmd.Flags().Uint64Var(&caseSeed, "seed", 1, "Random seed")
	generateCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write CSV to file instead of stdout")

	rootCmd.AddCommand(serveCmd, queryCmd, describeCmd, searchCmd, explainCmd, predictCmd, extractCmd, generateCmd)
}
