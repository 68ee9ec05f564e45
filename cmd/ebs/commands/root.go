package commands

import (
	"ebs/internal/calendar"
	"ebs/internal/config"
	"ebs/internal/logging"
	"ebs/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "ebs",
	Short: "ebs is an evidence-based scheduling estimator",
	Long: `A scheduling estimator that derives per-person velocities from historical
estimate/actual data and runs Monte-Carlo simulations to project ship dates
for pending work.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("ebs starting")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// withStore runs fn against the configured store and flushes it afterwards,
// mirroring the load/mutate/flush session the store is designed around.
func withStore(fn func(st *store.Store) error) error {
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return st.Flush()
}

// dateFlag parses a --date style argument.
func dateFlag(s string) (calendar.Date, error) {
	if s == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseDate(s)
}
