package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jungle",
	Short: "Jungle booking backend",
	Long: `Serves the Jungle booking API and gives terminal access to the
service catalog and the device-local recently viewed list.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
