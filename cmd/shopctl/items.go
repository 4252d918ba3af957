package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	itemsCmd := &cobra.Command{Use: "items", Short: "Shopping item operations"}

	var name, unit string
	var quantity float64
	addCmd := &cobra.Command{
		Use:   "add LIST_ID",
		Short: "Add an item to a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dtoIn := map[string]interface{}{"listId": args[0], "name": name}
			if cmd.Flags().Changed("quantity") {
				dtoIn["quantity"] = quantity
			}
			if unit != "" {
				dtoIn["unit"] = unit
			}
			data, err := doCommand("/shoppingItem/add", dtoIn)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Item name (required)")
	addCmd.Flags().Float64VarP(&quantity, "quantity", "q", 0, "Quantity")
	addCmd.Flags().StringVar(&unit, "unit", "", "Unit, e.g. kg")
	_ = addCmd.MarkFlagRequired("name")
	itemsCmd.AddCommand(addCmd)

	rootCmd.AddCommand(itemsCmd)
}
