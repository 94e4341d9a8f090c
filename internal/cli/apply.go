package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/creditdost/portal/core/apiclient"
	"github.com/creditdost/portal/core/forms"
	"github.com/creditdost/portal/core/validator"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit an application or enquiry",
	Long: `Submit an application or enquiry to Credit Dost.

Subcommands:
  loan          Apply for a loan
  credit-check  Request a free credit-score check
  franchise     Enquire about a franchise partnership
  career        Apply for an open position

Each subcommand collects the details interactively, validates them
locally, and submits only when everything checks out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var applyLoanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Apply for a loan",
	RunE: func(cmd *cobra.Command, args []string) error {
		var form forms.LoanApplication
		var amount, income string

		prompt := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Full name").Value(&form.FullName),
				huh.NewInput().Title("Email").Placeholder("you@example.com").Value(&form.Email),
				huh.NewInput().Title("Mobile number").Placeholder("10-digit mobile").Value(&form.Phone),
				huh.NewInput().Title("PAN").Placeholder("ABCDE1234F").Value(&form.PAN),
				huh.NewInput().Title("Pincode").Value(&form.Pincode),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Loan type").
					Options(
						huh.NewOption("Personal loan", forms.LoanTypePersonal),
						huh.NewOption("Home loan", forms.LoanTypeHome),
						huh.NewOption("Business loan", forms.LoanTypeBusiness),
						huh.NewOption("Vehicle loan", forms.LoanTypeVehicle),
					).
					Value(&form.LoanType),
				huh.NewInput().Title("Loan amount (₹)").Value(&amount),
				huh.NewInput().Title("Monthly income (₹)").Value(&income),
			),
		)
		if err := prompt.Run(); err != nil {
			return err
		}
		form.Amount = parseAmount(amount)
		form.MonthlyIncome = parseAmount(income)

		a, err := newApp()
		if err != nil {
			return err
		}

		receipt, err := a.client.SubmitLoanApplication(cmd.Context(), form)
		if err != nil {
			return submitError(err)
		}
		printReceipt(receipt)
		return nil
	},
}

var applyCreditCheckCmd = &cobra.Command{
	Use:   "credit-check",
	Short: "Request a free credit-score check",
	RunE: func(cmd *cobra.Command, args []string) error {
		var form forms.CreditCheck

		prompt := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Full name").Value(&form.FullName),
			huh.NewInput().Title("Email").Placeholder("you@example.com").Value(&form.Email),
			huh.NewInput().Title("Mobile number").Placeholder("10-digit mobile").Value(&form.Phone),
			huh.NewInput().Title("PAN").Placeholder("ABCDE1234F").Value(&form.PAN),
			huh.NewConfirm().
				Title("Allow Credit Dost to fetch your credit report?").
				Value(&form.Consent),
		))
		if err := prompt.Run(); err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		receipt, err := a.client.SubmitCreditCheck(cmd.Context(), form)
		if err != nil {
			return submitError(err)
		}
		printReceipt(receipt)
		return nil
	},
}

var applyFranchiseCmd = &cobra.Command{
	Use:   "franchise",
	Short: "Enquire about a franchise partnership",
	RunE: func(cmd *cobra.Command, args []string) error {
		var form forms.FranchiseEnquiry
		var investment string

		prompt := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Full name").Value(&form.FullName),
				huh.NewInput().Title("Email").Placeholder("you@example.com").Value(&form.Email),
				huh.NewInput().Title("Mobile number").Placeholder("10-digit mobile").Value(&form.Phone),
				huh.NewInput().Title("City").Value(&form.City),
				huh.NewInput().Title("Pincode").Value(&form.Pincode),
			),
			huh.NewGroup(
				huh.NewInput().Title("Investment capacity (₹)").Value(&investment),
				huh.NewText().Title("Anything you want us to know?").Value(&form.Message),
			),
		)
		if err := prompt.Run(); err != nil {
			return err
		}
		form.Investment = parseAmount(investment)

		a, err := newApp()
		if err != nil {
			return err
		}

		receipt, err := a.client.SubmitFranchiseEnquiry(cmd.Context(), form)
		if err != nil {
			return submitError(err)
		}
		printReceipt(receipt)
		return nil
	},
}

var applyCareerCmd = &cobra.Command{
	Use:   "career",
	Short: "Apply for an open position",
	RunE: func(cmd *cobra.Command, args []string) error {
		var form forms.CareerApplication
		var experience string

		prompt := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Full name").Value(&form.FullName),
				huh.NewInput().Title("Email").Placeholder("you@example.com").Value(&form.Email),
				huh.NewInput().Title("Mobile number").Placeholder("10-digit mobile").Value(&form.Phone),
			),
			huh.NewGroup(
				huh.NewInput().Title("Position").Value(&form.Position),
				huh.NewInput().Title("Years of experience").Value(&experience),
				huh.NewInput().Title("Resume URL").Placeholder("https://...").Value(&form.ResumeURL),
				huh.NewText().Title("Cover note").Value(&form.CoverNote),
			),
		)
		if err := prompt.Run(); err != nil {
			return err
		}
		form.ExperienceYears, _ = strconv.Atoi(experience)

		a, err := newApp()
		if err != nil {
			return err
		}

		receipt, err := a.client.SubmitCareerApplication(cmd.Context(), form)
		if err != nil {
			return submitError(err)
		}
		printReceipt(receipt)
		return nil
	},
}

// parseAmount is forgiving about what it accepts; a zero result fails
// the form's own required/positive rules with a field-level message,
// which beats a bare strconv error.
func parseAmount(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// submitError turns local validation failures into a per-field listing
// and passes every other error through.
func submitError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("submission failed: %w", err)
	}

	fmt.Println(warnStyle.Render("Please fix the following and try again:"))
	for _, ve := range verrs {
		fmt.Println("  - " + ve.Field + ": " + ve.Message)
	}
	return errors.New("application not submitted")
}

func printReceipt(receipt apiclient.LeadReceipt) {
	fmt.Println(successStyle.Render("Application received."))
	fmt.Println(labelStyle.Render("Reference: ") + receipt.Reference)
	if receipt.Status != "" {
		fmt.Println(mutedStyle.Render("Status: " + receipt.Status))
	}
	fmt.Println(mutedStyle.Render("Our team will reach out within one working day."))
}

func init() {
	applyCmd.AddCommand(applyLoanCmd, applyCreditCheckCmd, applyFranchiseCmd, applyCareerCmd)
	rootCmd.AddCommand(applyCmd)
}
