package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"squad_catalog/domain"
)

var costFile string

func init() {
	costCmd := &cobra.Command{
		Use:   "cost --file <file>",
		Short: "Show how a squad shopping list splits across members",
		RunE: func(cmd *cobra.Command, args []string) error {
			if costFile == "" {
				return errors.New("--file required")
			}
			b, err := os.ReadFile(costFile)
			if err != nil {
				return err
			}
			var items []domain.ListItem
			if err := json.Unmarshal(b, &items); err != nil {
				return fmt.Errorf("decoding shopping list: %w", err)
			}

			breakdown := domain.SplitCost(items)
			fmt.Printf("Total: %s\n", breakdown.Total.StringFixed(2))
			for _, id := range breakdown.Participants() {
				fmt.Printf("%s: %s (%s%%)\n", id, breakdown.PerParticipant[id].StringFixed(2), breakdown.Share(id).StringFixed(1))
			}
			return nil
		},
	}
	costCmd.Flags().StringVar(&costFile, "file", "", "shopping list JSON file")
	rootCmd.AddCommand(costCmd)
}
