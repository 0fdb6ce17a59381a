package command

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRecommendCmd(build EnvBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [user-id]",
		Short: "Print the recommendations a user would see",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(build, func(ctx context.Context, env *Env, out io.Writer, args []string) error {
			list, err := env.Recommendations.Recommend(ctx, args[0])
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "No content in the catalog yet.")
				return nil
			}
			for i, c := range list {
				fmt.Fprintf(out, "%d. [%d] %s (%s, %s)\n", i+1, c.ID, c.Title, c.Genre, c.ContentType)
			}
			return nil
		}),
	}
}

func newPurgeTokensCmd(build EnvBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: withEnv(build, func(ctx context.Context, env *Env, out io.Writer, _ []string) error {
			n, err := env.RefreshTokens.DeleteExpired(ctx)
			if err != nil {
				return fmt.Errorf("purge refresh tokens: %w", err)
			}
			fmt.Fprintf(out, "✓ Removed %d refresh tokens\n", n)
			return nil
		}),
	}
}
