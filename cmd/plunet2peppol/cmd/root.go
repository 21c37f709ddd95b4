package cmd

import (
	"github.com/spf13/cobra"

	"github.com/smt-joen/plunet2peppol/internal/config"
	"github.com/smt-joen/plunet2peppol/internal/logger"
)

var (
	version = "1.0.0"

	// Global flags
	verbose        bool
	defaultCountry string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "plunet2peppol",
	Short: "Convert billing records to PEPPOL BIS Billing 3.0 XML",
	Long: `plunet2peppol converts loosely-structured billing records (one JSON
object per invoice or credit note) into UBL documents compliant with
PEPPOL BIS Billing 3.0, ready for submission to the network.

Examples:
  # Convert every record in the current directory
  plunet2peppol convert

  # Convert a directory of records
  plunet2peppol convert invoices/

  # Convert specific records
  plunet2peppol convert 2301.json 2302.json`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&defaultCountry, "default-country", "", "Country assumed for parties without one (env: P2P_DEFAULT_COUNTRY)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	cfg = config.Load()
	if defaultCountry != "" {
		cfg.DefaultCountry = defaultCountry
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		// Fall back to the defaults rather than refusing to run.
		_ = logger.Setup("info", "console")
	}
}
