package command

// root.go defines the root command of cinehub-admin and how each
// subcommand gets its services.

import (
	"context"
	"fmt"
	"io"
	"os"

	"cinehub/database"
	"cinehub/internal/config"
	"cinehub/internal/logging"
	"cinehub/internal/microservices/http-api/repository"
	"cinehub/internal/microservices/http-api/server"
	"cinehub/internal/microservices/http-api/service"

	"github.com/spf13/cobra"
)

// Env is what the subcommands operate on.
type Env struct {
	Admin           service.AdminService
	Roles           service.RoleResolver
	Recommendations service.RecommendationService
	RefreshTokens   repository.RefreshTokenRepository
	Migrate         func(ctx context.Context) error
}

// EnvBuilder opens whatever the commands need and returns a cleanup func.
type EnvBuilder func(ctx context.Context) (*Env, func(), error)

// NewRootCmd builds the command tree. Tests pass a builder returning fakes.
func NewRootCmd(build EnvBuilder) *cobra.Command {
	root := &cobra.Command{
		Use:   "cinehub-admin",
		Short: "cinehub-admin - operator tool for the cinehub catalog",
		Long: `cinehub-admin talks to the cinehub database directly. Use it to:
- apply schema migrations
- grant reviewer and creator capabilities
- block or unblock accounts
- inspect a user's recommendations
- purge expired refresh tokens

Configuration comes from the same environment variables as the API server.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(build),
		newGrantCmd(build),
		newRolesCmd(build),
		newUserCmd(build),
		newRecommendCmd(build),
		newPurgeTokensCmd(build),
	)
	return root
}

// Execute runs the CLI against the configured database.
func Execute() {
	if err := NewRootCmd(databaseEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// databaseEnv builds an Env on the real Postgres and Redis.
func databaseEnv(ctx context.Context) (*Env, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewWithWriter("cinehub-admin", cfg.LogLevel, "text", os.Stderr)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	rdb, err := database.ConnectRedis(ctx, cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, cache bypassed", "error", err)
		rdb = nil
	}

	cleanup := func() {
		if rdb != nil {
			rdb.Close()
		}
		database.Close(db)
	}

	repos := server.NewRepositories(db, rdb, cfg)
	svcs := server.NewServices(repos, cfg, logger)
	return &Env{
		Admin:           svcs.Admin,
		Roles:           service.NewRoleResolver(repos.Profiles, logger),
		Recommendations: svcs.Recommendation,
		RefreshTokens:   repos.RefreshTokens,
		Migrate: func(context.Context) error {
			return database.Migrate(db, logger)
		},
	}, cleanup, nil
}

// withEnv adapts a RunE that needs an Env.
func withEnv(build EnvBuilder, run func(ctx context.Context, env *Env, out io.Writer, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		env, cleanup, err := build(ctx)
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}
		defer cleanup()
		return run(ctx, env, cmd.OutOrStdout(), args)
	}
}
