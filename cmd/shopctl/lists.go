package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	listsCmd := &cobra.Command{Use: "lists", Short: "Shopping list operations"}

	// create
	var name, description string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			dtoIn := map[string]interface{}{"name": name}
			if description != "" {
				dtoIn["description"] = description
			}
			data, err := doCommand("/shoppingList/create", dtoIn)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "List name (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "List description")
	_ = createCmd.MarkFlagRequired("name")
	listsCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get LIST_ID",
		Short: "Get a shopping list by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doCommand("/shoppingList/get", map[string]interface{}{"id": args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listsCmd.AddCommand(getCmd)

	// list
	var ownedOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List shopping lists visible to the caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			dtoIn := map[string]interface{}{}
			if ownedOnly {
				dtoIn["ownedOnly"] = true
			}
			data, err := doCommand("/shoppingList/list", dtoIn)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().BoolVar(&ownedOnly, "owned-only", false, "Only lists the caller owns")
	listsCmd.AddCommand(listCmd)

	// update
	var updName, updDescription string
	var clearDescription bool
	updateCmd := &cobra.Command{
		Use:   "update LIST_ID",
		Short: "Update name or description of a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dtoIn := map[string]interface{}{"id": args[0]}
			if cmd.Flags().Changed("name") {
				dtoIn["name"] = updName
			}
			if clearDescription {
				dtoIn["description"] = nil
			} else if cmd.Flags().Changed("description") {
				dtoIn["description"] = updDescription
			}
			data, err := doCommand("/shoppingList/update", dtoIn)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&updName, "name", "n", "", "New list name")
	updateCmd.Flags().StringVarP(&updDescription, "description", "d", "", "New list description")
	updateCmd.Flags().BoolVar(&clearDescription, "clear-description", false, "Clear the description")
	listsCmd.AddCommand(updateCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete LIST_ID",
		Short: "Delete a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doCommand("/shoppingList/delete", map[string]interface{}{"id": args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listsCmd.AddCommand(deleteCmd)

	// add-member
	var memberID, role string
	addMemberCmd := &cobra.Command{
		Use:   "add-member LIST_ID",
		Short: "Add a member to a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dtoIn := map[string]interface{}{"listId": args[0], "userId": memberID, "role": role}
			data, err := doCommand("/shoppingList/addMember", dtoIn)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	addMemberCmd.Flags().StringVarP(&memberID, "member", "m", "", "User ID to add (required)")
	addMemberCmd.Flags().StringVarP(&role, "role", "r", "member", "Role: member or viewer")
	_ = addMemberCmd.MarkFlagRequired("member")
	listsCmd.AddCommand(addMemberCmd)

	rootCmd.AddCommand(listsCmd)
}
