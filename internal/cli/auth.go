package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/creditdost/portal/core/routeguard"
	"github.com/creditdost/portal/core/sanitizer"
	"github.com/creditdost/portal/core/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your Credit Dost account",
	Long: `Sign in with your email and password.

Credentials can be passed as flags or entered interactively. On
success the session token is saved to ~/.creditdost/token.json and
reused by later commands.

Examples:
  creditdost login
  creditdost login --email ravi@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Placeholder("you@example.com").
					Value(&email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}
		email = sanitizer.NormalizeEmail(email)

		a, err := newApp()
		if err != nil {
			return err
		}

		auth, err := a.sessions.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Signed in as %s (%s).", auth.User.Name, auth.User.Role)))
		fmt.Println(mutedStyle.Render("Your home page: " + routeguard.RoleHome(auth.User.Role)))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Credit Dost account",
	Long: `Create an account and sign in.

All details are collected interactively. The new account is signed in
immediately and the session token saved, just like login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var params session.RegisterParams

		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&params.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&params.Email),
			huh.NewInput().
				Title("Mobile number").
				Placeholder("10-digit mobile").
				Value(&params.Phone),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&params.Password),
		))
		if err := form.Run(); err != nil {
			return err
		}

		params.Name = sanitizer.CollapseWhitespace(params.Name)
		params.Email = sanitizer.NormalizeEmail(params.Email)
		params.Phone = sanitizer.NormalizePhone(params.Phone)

		a, err := newApp()
		if err != nil {
			return err
		}

		auth, err := a.sessions.Register(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Welcome, %s! Your account is ready.", auth.User.Name)))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.sessions.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("failed to remove saved session: %w", err)
		}

		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		state := a.sessions.Bootstrap(cmd.Context())
		if !state.IsAuthenticated() {
			fmt.Println(mutedStyle.Render("Not signed in. Run 'creditdost login' first."))
			return nil
		}

		u := state.User
		fmt.Println(labelStyle.Render("Name:  ") + u.Name)
		fmt.Println(labelStyle.Render("Email: ") + u.Email)
		fmt.Println(labelStyle.Render("Role:  ") + string(u.Role))
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
