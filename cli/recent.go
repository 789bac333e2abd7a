package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jungle-app/jungle-booking/config"
	"github.com/jungle-app/jungle-booking/recent"
	"github.com/spf13/cobra"
)

var (
	recentViewer    string
	recentStorePath string
	recentJSON      bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage the recently viewed list",
	Long: `Reads and updates the recently viewed services kept in the
device-local SQLite file. Without --viewer the guest list is used.`,
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the recently viewed service ids, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRecentList,
}

var recentAddCmd = &cobra.Command{
	Use:   "add [service-id]",
	Short: "Record a service as viewed",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecentAdd,
}

func init() {
	recentCmd.PersistentFlags().StringVar(&recentViewer, "viewer", "", "user id or device:<id> owning the list")
	recentCmd.PersistentFlags().StringVar(&recentStorePath, "store", "", "SQLite file (defaults to LOCAL_STORE_PATH or ~/.jungle/local.db)")
	recentListCmd.Flags().BoolVar(&recentJSON, "json", false, "output ids as JSON")

	recentCmd.AddCommand(recentListCmd, recentAddCmd)
	rootCmd.AddCommand(recentCmd)
}

func openRecent() (*recent.Service, func(), error) {
	path := recentStorePath

	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}

		path, err = cfg.Local.ResolveStorePath()
		if err != nil {
			return nil, nil, err
		}
	}

	store, err := recent.OpenSQLiteStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local store: %w", err)
	}

	return recent.NewService(store), func() { store.Close() }, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runRecentList(cmd *cobra.Command, _ []string) error {
	service, closeStore, err := openRecent()
	if err != nil {
		return err
	}
	defer closeStore()

	ids := service.Get(commandContext(cmd), recentViewer)

	if recentJSON {
		data, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("failed to marshal ids: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(ids) == 0 {
		cmd.Println("Nothing viewed yet.")
		return nil
	}

	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}

	return nil
}

func runRecentAdd(cmd *cobra.Command, args []string) error {
	service, closeStore, err := openRecent()
	if err != nil {
		return err
	}
	defer closeStore()

	service.Add(commandContext(cmd), args[0], recentViewer)

	return nil
}
