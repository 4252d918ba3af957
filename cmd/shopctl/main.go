package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag      string
	userFlag     string
	profilesFlag string
	rootCmd      = &cobra.Command{
		Use:   "shopctl",
		Short: "CLI client for the Shopapp backend command API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Shopapp service base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Caller user ID (sent as X-User-Id)")
	rootCmd.PersistentFlags().StringVarP(&profilesFlag, "profiles", "p", "Operatives", "Comma-separated profiles (sent as X-User-Profiles)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
