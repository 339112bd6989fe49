// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It searches
// PubMed, fetches each matching article and writes one CSV row per paper
// listing its non-academic and company-affiliated authors.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/logging"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const secretsDir = ".secrets/"

var (
	// logger is built in PersistentPreRunE once flags and config are known.
	logger = zerolog.Nop()

	// credentials holds what was found in .secrets/ at startup.
	credentials secrets.Credentials
)

// rootCmd searches PubMed and writes the result table.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "List PubMed papers with non-academic and company-affiliated authors",
	Long: `get-papers-list searches PubMed for a query, fetches every matching
article and writes one CSV row per paper: PubmedID, Title, Publication Date,
Non-Academic Authors, Company Affiliations and Corresponding Author Email.

The query is passed to PubMed as-is, so full PubMed syntax works. --author,
--keyword, --from and --to add structured terms to it. Without --file the
table is written to stdout.`,
	Example: `  get-papers-list "cancer immunotherapy" -f results.csv
  get-papers-list --author "Smith J" --from 2022-01-01 --max-results 20
  get-papers-list --query-file saved.yaml --db data`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger = logging.New(cfg.Logging, os.Stderr)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}

		creds, err := secrets.Load(secretsDir, logger)
		if err != nil {
			return err
		}
		credentials = creds
		if creds.APIKey != "" || creds.Email != "" {
			logger.Debug().
				Bool("api_key", creds.APIKey != "").
				Bool("email", creds.Email != "").
				Msg("loaded secrets")
		}
		return nil
	},
	RunE: runQuery,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/get-papers-list.yaml)")
	pf.BoolP("debug", "d", false, "print debug information during execution")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("db", "", "store directory; when set, rows are also saved to <db>/papers.db")
	pf.String("email-scope", "affiliation", "where to look for the corresponding email: affiliation or document")
	pf.String("company-mode", "author", "what the Company Affiliations column lists: author or affiliation")
	pf.String("name-order", "first-last", "author display name order: first-last or last-first")
	pf.String("empty-list", "None", "text written for an empty author list (may be empty)")

	_ = viper.BindPFlag("logging.format", pf.Lookup("log-format"))
	_ = viper.BindPFlag("store.dir", pf.Lookup("db"))
	_ = viper.BindPFlag("classify.email_scope", pf.Lookup("email-scope"))
	_ = viper.BindPFlag("classify.company_list_mode", pf.Lookup("company-mode"))
	_ = viper.BindPFlag("classify.name_order", pf.Lookup("name-order"))
	_ = viper.BindPFlag("classify.empty_list_text", pf.Lookup("empty-list"))

	f := rootCmd.Flags()
	f.StringP("file", "f", "", "CSV file to write results to (default: stdout)")
	f.Int("max-results", 0, "maximum number of PubMed IDs to fetch (default 50)")
	f.String("author", "", "restrict to an author, e.g. \"Smith J\"")
	f.StringSlice("keyword", nil, "title/abstract keyword; repeat or comma-separate for several")
	f.String("from", "", "publication date range start (YYYY-MM-DD)")
	f.String("to", "", "publication date range end (YYYY-MM-DD)")
	f.String("save-query", "", "write the query and the IDs found to this YAML file")
	f.String("query-file", "", "replay the IDs saved in a query file instead of searching")

	_ = viper.BindPFlag("pubmed.max_results", f.Lookup("max-results"))
}

func initConfig() {
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		viper.Set("logging.level", "debug")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
