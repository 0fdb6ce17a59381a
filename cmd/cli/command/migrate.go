package command

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newMigrateCmd(build EnvBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: withEnv(build, func(ctx context.Context, env *Env, out io.Writer, _ []string) error {
			if err := env.Migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "✓ Schema is up to date")
			return nil
		}),
	}
}
