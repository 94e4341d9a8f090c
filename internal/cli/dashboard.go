package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creditdost/portal/core/routeguard"
	"github.com/creditdost/portal/core/session"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your leads dashboard",
	Long: `Show the leads dashboard for your role.

Admins see every captured lead; franchise partners see the leads for
their territory. Customers do not have a dashboard and are pointed at
the portal home page instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		state := a.sessions.Bootstrap(cmd.Context())

		decision := routeguard.Evaluate(state, session.RoleAdmin, session.RoleFranchiseUser)
		switch decision.Action {
		case routeguard.ShowLoading:
			fmt.Println(mutedStyle.Render("Session is still loading, try again."))
			return nil
		case routeguard.Redirect:
			if decision.Target == routeguard.LoginPath {
				return fmt.Errorf("not signed in: run 'creditdost login' first")
			}
			fmt.Println(warnStyle.Render("Your account has no dashboard here."))
			fmt.Println(mutedStyle.Render("Visit " + decision.Target + " on the portal instead."))
			return nil
		}

		leads, err := a.client.Leads(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load leads: %w", err)
		}

		title := "Franchise dashboard"
		if state.User.Role == session.RoleAdmin {
			title = "Admin dashboard"
		}
		fmt.Println(titleStyle.Render(title))

		if len(leads) == 0 {
			fmt.Println(mutedStyle.Render("No leads yet."))
			return nil
		}

		for _, lead := range leads {
			fmt.Printf("%s  %-14s %-24s %s\n",
				labelStyle.Render(lead.Reference),
				lead.Kind,
				lead.FullName,
				mutedStyle.Render(lead.Status),
			)
		}
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%d lead(s)", len(leads))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
