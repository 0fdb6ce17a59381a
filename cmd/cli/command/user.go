package command

import (
	"context"
	"fmt"
	"io"

	"cinehub/internal/microservices/http-api/service"

	"github.com/spf13/cobra"
)

// operator is the actor recorded for CLI-initiated changes.
var operator = service.Actor{UserID: "cinehub-admin", IsStaff: true}

func newUserCmd(build EnvBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Account management commands",
	}

	var search string
	var page, pageSize int
	list := &cobra.Command{
		Use:   "list",
		Short: "List users with their resolved roles",
		Args:  cobra.NoArgs,
		RunE: withEnv(build, func(ctx context.Context, env *Env, out io.Writer, _ []string) error {
			resp, err := env.Admin.ListUsers(ctx, search, page, pageSize)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-36s  %-20s  %-6s  %-6s  %-8s  %-7s\n", "ID", "USERNAME", "ACTIVE", "STAFF", "REVIEWER", "CREATOR")
			for _, u := range resp.Data {
				fmt.Fprintf(out, "%-36s  %-20s  %-6t  %-6t  %-8t  %-7t\n", u.ID, u.Username, u.IsActive, u.IsStaff, u.IsReviewer, u.IsCreator)
			}
			fmt.Fprintf(out, "page %d, %d users total\n", resp.Page, resp.Total)
			return nil
		}),
	}
	list.Flags().StringVar(&search, "search", "", "filter by username or email")
	list.Flags().IntVar(&page, "page", 1, "page number")
	list.Flags().IntVar(&pageSize, "page-size", 20, "users per page")

	cmd.AddCommand(list, setActiveCmd(build, "block", false), setActiveCmd(build, "unblock", true))
	return cmd
}

func setActiveCmd(build EnvBuilder, use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [user-id]",
		Short: "Mark an account as " + map[bool]string{true: "active", false: "blocked"}[active],
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(build, func(ctx context.Context, env *Env, out io.Writer, args []string) error {
			if err := env.Admin.SetUserActive(ctx, operator, args[0], active); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ %s: active=%t\n", args[0], active)
			return nil
		}),
	}
}
