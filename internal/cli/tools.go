package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creditdost/portal/core/apiclient"
)

var emiCmd = &cobra.Command{
	Use:   "emi",
	Short: "Calculate a loan EMI schedule",
	Long: `Calculate the monthly EMI for a loan.

Examples:
  creditdost emi --principal 500000 --rate 12 --tenure 24
  creditdost emi --principal 500000 --rate 12 --tenure 24 --schedule`,
	RunE: func(cmd *cobra.Command, args []string) error {
		principal, _ := cmd.Flags().GetFloat64("principal")
		rate, _ := cmd.Flags().GetFloat64("rate")
		tenure, _ := cmd.Flags().GetInt("tenure")
		showSchedule, _ := cmd.Flags().GetBool("schedule")

		a, err := newApp()
		if err != nil {
			return err
		}

		schedule, err := a.client.CalculateEMI(cmd.Context(), apiclient.EMIRequest{
			Principal:     principal,
			AnnualRatePct: rate,
			TenureMonths:  tenure,
		})
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("EMI calculation"))
		fmt.Println(labelStyle.Render("Monthly EMI:    ") + formatINR(schedule.MonthlyEMI))
		fmt.Println(labelStyle.Render("Total interest: ") + formatINR(schedule.TotalInterest))
		fmt.Println(labelStyle.Render("Total payment:  ") + formatINR(schedule.TotalPayment))

		if showSchedule {
			fmt.Println()
			fmt.Printf("%5s %15s %15s %15s\n", "Month", "Principal", "Interest", "Balance")
			for _, row := range schedule.Schedule {
				fmt.Printf("%5d %15s %15s %15s\n",
					row.Month, formatINR(row.Principal), formatINR(row.Interest), formatINR(row.Balance))
			}
		}
		return nil
	},
}

var ifscCmd = &cobra.Command{
	Use:   "ifsc <code>",
	Short: "Look up a bank branch by IFSC code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		details, err := a.client.LookupIFSC(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}

		fmt.Println(titleStyle.Render(details.IFSC))
		fmt.Println(labelStyle.Render("Bank:   ") + details.Bank)
		fmt.Println(labelStyle.Render("Branch: ") + details.Branch)
		if details.Address != "" {
			fmt.Println(labelStyle.Render("Address:") + " " + details.Address)
		}
		fmt.Printf("%s %s, %s\n", labelStyle.Render("City:  "), details.City, details.State)
		return nil
	},
}

func init() {
	emiCmd.Flags().Float64("principal", 0, "loan amount in rupees")
	emiCmd.Flags().Float64("rate", 0, "annual interest rate in percent")
	emiCmd.Flags().Int("tenure", 0, "tenure in months")
	emiCmd.Flags().Bool("schedule", false, "print the full amortization schedule")
	_ = emiCmd.MarkFlagRequired("principal")
	_ = emiCmd.MarkFlagRequired("rate")
	_ = emiCmd.MarkFlagRequired("tenure")

	rootCmd.AddCommand(emiCmd, ifscCmd)
}
