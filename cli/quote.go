package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"loan-offer/domain"
	"loan-offer/service"
)

var (
	quoteAmount   float64
	quoteTenure   int
	quoteScore    int
	quoteSanction sanctionFlags
)

func init() {
	rootCmd.AddCommand(quoteCmd)
	quoteCmd.Flags().Float64VarP(&quoteAmount, "amount", "a", 0, "requested loan amount")
	quoteCmd.Flags().IntVarP(&quoteTenure, "tenure", "t", 1, "tenure in years (1, 2 or 3)")
	quoteCmd.Flags().IntVarP(&quoteScore, "score", "s", 0, "credit score for this request")
	quoteCmd.Flags().IntVar(&quoteSanction.score, "sanctioned-score", 0, "score recorded by the sanctioning step")
	quoteCmd.Flags().Float64Var(&quoteSanction.maxLoan, "max-loan", 0, "maximum eligible amount from the sanctioning step")
	_ = quoteCmd.MarkFlagRequired("amount")
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a single offer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tenure, err := domain.ParseTenure(quoteTenure)
		if err != nil {
			return err
		}
		offers, err := quoteSanction.offerService(cmd.Context())
		if err != nil {
			return err
		}

		offer, err := offers.Quote(cmd.Context(), service.QuoteInput{
			Request: domain.LoanRequest{
				Amount:      quoteAmount,
				Tenure:      tenure,
				CreditScore: optionalScore(cmd.Flags().Changed("score"), quoteScore),
			},
		})
		if err != nil {
			return err
		}
		if !service.Finite(offer) {
			return domain.ErrNonFiniteOffer
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Tenure\t%s\n", tenure)
		fmt.Fprintf(tw, "Interest rate\t%.2f%%\n", offer.Rate)
		fmt.Fprintf(tw, "Processing fee\t%.2f\n", offer.ProcessingFee)
		fmt.Fprintf(tw, "Legal fee\t%.2f\n", offer.LegalFee)
		fmt.Fprintf(tw, "Cashback\t%.2f\n", offer.Cashback)
		fmt.Fprintf(tw, "EMI\t%.2f\n", offer.EMI)
		fmt.Fprintf(tw, "Net disbursed\t%.2f\n", offer.NetDisbursed)
		return tw.Flush()
	},
}
