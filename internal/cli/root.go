package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/creditdost/portal/core/apiclient"
	"github.com/creditdost/portal/core/config"
	"github.com/creditdost/portal/core/logger"
	"github.com/creditdost/portal/core/session"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "creditdost",
	Short: "Credit Dost portal client",
	Long: `Command-line client for the Credit Dost portal.

Browse service packages and articles, run the EMI and IFSC tools,
submit loan, credit-check, franchise, and career applications, and
manage your account session.

The session token is stored in ~/.creditdost/token.json and attached
to authenticated requests automatically. Configure the backend with
CREDITDOST_API_URL (and optionally CREDITDOST_API_TIMEOUT).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// app bundles the collaborators every command shares: one backend
// client, one session manager, one logger.
type app struct {
	log      *slog.Logger
	client   *apiclient.Client
	sessions *session.Manager
}

func newApp() (*app, error) {
	var cfg apiclient.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := logger.New(logger.WithLevel(level), logger.WithService("creditdost"))
	logger.SetAsDefault(log)

	tokenPath, err := session.DefaultTokenPath()
	if err != nil {
		return nil, err
	}
	store := session.NewFileStore(tokenPath)

	client, err := apiclient.New(cfg,
		apiclient.WithTokenSource(store),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		log:      log,
		client:   client,
		sessions: session.NewManager(client, store, session.WithLogger(log)),
	}, nil
}
