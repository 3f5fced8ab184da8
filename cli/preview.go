package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"loan-offer/domain"
	"loan-offer/service"
)

var previewSanction sanctionFlags

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewSanction.score, "score", 0, "sanctioned credit score")
	previewCmd.Flags().Float64Var(&previewSanction.maxLoan, "max-loan", 0, "maximum eligible amount")
	_ = previewCmd.MarkFlagRequired("max-loan")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the sanction result EMI preview for each tenure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := service.SanctionPreview(domain.Sanction{
			CibilScore:     previewSanction.score,
			MaxLoanAllowed: previewSanction.maxLoan,
		})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "CIBIL score: %d\n", p.CibilScore)
		fmt.Fprintf(out, "Max loan: %.2f\n", p.MaxLoanAllowed)
		for _, tp := range p.Previews {
			fmt.Fprintf(out, "%s: %d / mo\n", domain.Tenure(tp.TenureYears), tp.EMIPreview)
		}
		return nil
	},
}
