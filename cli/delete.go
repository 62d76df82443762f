package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var force bool

func init() {
	deleteCmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every product in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Print("Delete all products? (y/N): ")
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := catalogStore.DeleteCatalog(context.Background()); err != nil {
				slog.Error("delete catalog failed", "error", err)
				return err
			}
			slog.Info("catalog deleted")
			fmt.Println("All products have been deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
}
