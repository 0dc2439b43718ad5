package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/config"
	"github.com/arcanaland/dealer/internal/deallog"
	"github.com/arcanaland/dealer/internal/deck"
)

var (
	configFile string
	settings   *config.Config
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dealer",
	Short: "Deal random four-card hands from a standard deck",
	Long: `Dealer shuffles a standard 52-card deck and deals four cards at a time.
Every deal is appended to a plain text log together with the time it was made.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		settings = cfg
		return setupLogger(cfg.LogLevel)
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/dealer/config.toml)")
	flags.String("log-file", "", "file deals are recorded to")
	flags.String("policy", "", "deal policy: replace (dealt cards go back) or remove (dealt cards stay out)")
	flags.Bool("with-time", true, "record the time of day as well as the date")
	flags.String("log-level", "", "logging level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings reads the config file and lets flags override it
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path := configFile
	if path == "" {
		path = config.GetConfigFilePath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("policy") {
		cfg.Policy, _ = flags.GetString("policy")
	}
	if flags.Changed("with-time") {
		cfg.IncludeTime, _ = flags.GetBool("with-time")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return cfg, nil
}

func setupLogger(lvl string) error {
	logrus.SetOutput(os.Stderr)

	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}

// newDeck builds and initializes the deck for this process
func newDeck(cfg *config.Config) (*deck.Deck, error) {
	policy, err := deck.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	d := deck.New(deck.WithPolicy(policy), deck.WithLogger(logrus.StandardLogger()))
	if err := d.Initialize(); err != nil {
		return nil, err
	}

	logrus.WithField("policy", policy).Debug("deck initialized")
	return d, nil
}

func newDealLog(cfg *config.Config) *deallog.Log {
	return deallog.New(cfg.LogFile,
		deallog.WithTime(cfg.IncludeTime),
		deallog.WithLogger(logrus.StandardLogger()),
	)
}
