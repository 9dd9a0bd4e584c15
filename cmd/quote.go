package cmd

import (
	"fmt"
	"io"

	"fulfillment-portal/models"
	"fulfillment-portal/pricing"
	"fulfillment-portal/utils"

	"github.com/spf13/cobra"
)

type quoteOptions struct {
	sheet         string
	shipmentType  string
	palletSubType string
	service       string
	productType   string
	quantity      int
	packOf        int
}

var quoteOpts quoteOptions

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price one shipment line from a YAML pricing sheet",
	Example: `  fulfillment-portal quote --sheet pricing.yaml --type product --service fba --product-type standard --qty 10 --pack 3
  fulfillment-portal quote --sheet pricing.yaml --type pallet --pallet-sub-type forwarding --qty 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := pricing.LoadSheet(quoteOpts.sheet)
		if err != nil {
			return err
		}
		return runQuote(cmd.OutOrStdout(), tables, quoteOpts)
	},
}

func init() {
	flags := quoteCmd.Flags()
	flags.StringVar(&quoteOpts.sheet, "sheet", "pricing.yaml", "YAML pricing sheet")
	flags.StringVar(&quoteOpts.shipmentType, "type", models.ShipmentTypeProduct, "shipment type (product, box, pallet)")
	flags.StringVar(&quoteOpts.palletSubType, "pallet-sub-type", "", "pallet sub-type (forwarding, existing_inventory)")
	flags.StringVar(&quoteOpts.service, "service", "", "prep service (fba, fbm)")
	flags.StringVar(&quoteOpts.productType, "product-type", "", "product type (standard, large, custom)")
	flags.IntVar(&quoteOpts.quantity, "qty", 1, "quantity")
	flags.IntVar(&quoteOpts.packOf, "pack", 1, "units per pack (products only)")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(out io.Writer, tables pricing.Tables, opts quoteOptions) error {
	if opts.quantity <= 0 {
		return fmt.Errorf("--qty must be greater than 0")
	}

	q := pricing.Quote{
		ShipmentType:  utils.NormalizeShipmentType(opts.shipmentType),
		PalletSubType: utils.NormalizePalletSubType(opts.palletSubType),
		Service:       utils.NormalizeService(opts.service),
		ProductType:   utils.NormalizeProductType(opts.productType),
		Tables:        tables,
	}
	packOf := opts.packOf
	if q.ShipmentType != models.ShipmentTypeProduct {
		packOf = 1
	}

	price := pricing.PriceLine(q, opts.quantity, packOf)
	if price.UnitPrice == 0 && price.TotalPrice == 0 {
		fmt.Fprintf(out, "No pricing available for %s\n", q.ContextKey())
		return nil
	}

	fmt.Fprintf(out, "Unit price:  %s\n", utils.FormatUSD(price.UnitPrice))
	fmt.Fprintf(out, "Total price: %s\n", utils.FormatUSD(price.TotalPrice))
	return nil
}
