package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"loan-offer/domain"
	"loan-offer/service"
)

var (
	compareAmount     float64
	compareScore      int
	compareMaxEMI     float64
	comparePreference string
	compareSanction   sanctionFlags
)

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64VarP(&compareAmount, "amount", "a", 0, "requested loan amount")
	compareCmd.Flags().IntVarP(&compareScore, "score", "s", 0, "credit score for this request")
	compareCmd.Flags().Float64Var(&compareMaxEMI, "max-emi", 0, "highest affordable EMI (0 for no limit)")
	compareCmd.Flags().StringVarP(&comparePreference, "preference", "p", string(domain.PreferBalanced),
		"minimize_interest, minimize_payment or balanced")
	compareCmd.Flags().IntVar(&compareSanction.score, "sanctioned-score", 0, "score recorded by the sanctioning step")
	compareCmd.Flags().Float64Var(&compareSanction.maxLoan, "max-loan", 0, "maximum eligible amount from the sanctioning step")
	_ = compareCmd.MarkFlagRequired("amount")
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare offers across all tenures and recommend one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		offers, err := compareSanction.offerService(cmd.Context())
		if err != nil {
			return err
		}

		result, err := service.NewTenureService(offers, log).Compare(cmd.Context(), "", domain.TenureComparisonInput{
			Amount:      compareAmount,
			CreditScore: optionalScore(cmd.Flags().Changed("score"), compareScore),
			MaxEMI:      compareMaxEMI,
			Preference:  domain.TenurePreference(comparePreference),
		})
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Tenure\tRate\tEMI\tTotal interest\tScore\t")
		for _, o := range result.Options {
			mark := ""
			if o.TenureYears == result.RecommendedTenure {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s%s\t%.2f%%\t%.2f\t%.2f\t%.2f\t\n",
				domain.Tenure(o.TenureYears), mark, o.Offer.Rate, o.Offer.EMI, o.TotalInterest, o.Score)
		}
		return tw.Flush()
	},
}
