package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"squad_catalog/domain"
)

var (
	lProductType, lVendor, lSort, lOrder, lOutput string
	lMin, lMax                                    float64

	pSize, pColor string

	exportFile string
)

// readProduct loads the catalog and picks one product by handle
func readProduct(handle string) (domain.CatalogProduct, error) {
	products, err := catalogStore.ReadCatalog(context.Background())
	if err != nil {
		return domain.CatalogProduct{}, err
	}
	return domain.FindByHandle(products, handle)
}

func init() {
	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			var minPtr, maxPtr *float64
			if cmd.Flags().Changed("min-price") {
				minPtr = &lMin
			}
			if cmd.Flags().Changed("max-price") {
				maxPtr = &lMax
			}
			products, err := catalogStore.ReadCatalog(context.Background())
			if err != nil {
				return err
			}
			out := domain.FilterProducts(products, domain.ListFilter{
				ProductType: lProductType,
				Vendor:      lVendor,
				MinPrice:    minPtr,
				MaxPrice:    maxPtr,
				SortBy:      lSort,
				Order:       lOrder,
			})
			if lOutput == "json" {
				b, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, p := range out {
				fmt.Printf("%s | %s | %.2f | %d | %s | %s\n",
					p.Handle, p.Title, p.BasePrice, len(p.Variants), p.ProductType, p.Vendor)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lProductType, "product-type", "", "product type")
	listCmd.Flags().StringVar(&lVendor, "vendor", "", "vendor")
	listCmd.Flags().Float64Var(&lMin, "min-price", 0, "min base price")
	listCmd.Flags().Float64Var(&lMax, "max-price", 0, "max base price")
	listCmd.Flags().StringVar(&lSort, "sort-by", "", "sort field: title|price|variants")
	listCmd.Flags().StringVar(&lOrder, "order", "asc", "sort order")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <handle>",
		Short: "Get product by handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProduct(args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// options
	optionsCmd := &cobra.Command{
		Use:   "options <handle>",
		Short: "Show the sizes and colors a product comes in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProduct(args[0])
			if err != nil {
				return err
			}
			sizes, colors := domain.VariantOptions(p)
			fmt.Printf("sizes: %s\n", strings.Join(sizes, ", "))
			fmt.Printf("colors: %s\n", strings.Join(colors, ", "))
			return nil
		},
	}
	rootCmd.AddCommand(optionsCmd)

	// price
	priceCmd := &cobra.Command{
		Use:   "price <handle>",
		Short: "Price of the variant matching a size and color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProduct(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%.2f\n", domain.SelectedPrice(p, pSize, pColor))
			return nil
		},
	}
	priceCmd.Flags().StringVar(&pSize, "size", "", "size")
	priceCmd.Flags().StringVar(&pColor, "color", "", "color")
	rootCmd.AddCommand(priceCmd)

	// export
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export the catalog to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			out, err := catalogStore.ReadCatalog(context.Background())
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(out, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	rootCmd.AddCommand(exportCmd)
}
