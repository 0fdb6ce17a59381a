package command

import (
	"context"
	"fmt"
	"io"

	"cinehub/internal/microservices/http-api/service"

	"github.com/spf13/cobra"
)

func newGrantCmd(build EnvBuilder) *cobra.Command {
	var expertise string

	cmd := &cobra.Command{
		Use:       "grant [reviewer|creator] [user-id]",
		Short:     "Grant the reviewer or creator capability to a user",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{service.RoleReviewer, service.RoleCreator},
		RunE: withEnv(build, func(ctx context.Context, env *Env, out io.Writer, args []string) error {
			role, userID := args[0], args[1]

			var exp *string
			if expertise != "" {
				exp = &expertise
			}
			if err := env.Admin.GrantRole(ctx, userID, role, exp); err != nil {
				return fmt.Errorf("grant %s: %w", role, err)
			}
			fmt.Fprintf(out, "✓ Granted %s to %s\n", role, userID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&expertise, "expertise", "", "expertise area recorded with the capability")
	return cmd
}

func newRolesCmd(build EnvBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "roles [user-id]",
		Short: "Show the resolved capabilities of a user",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(build, func(ctx context.Context, env *Env, out io.Writer, args []string) error {
			caps := env.Roles.Capabilities(ctx, args[0])
			fmt.Fprintf(out, "reviewer: %s\n", caps.Reviewer)
			fmt.Fprintf(out, "creator:  %s\n", caps.Creator)
			return nil
		}),
	}
}
