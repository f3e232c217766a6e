package cli

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureSettings(); err != nil {
		return err
	}

	cmd.Printf("Config file: %s\n\n", settingsStore.Path())
	cmd.Printf("Embedding: %s / %s%s\n",
		appSettings.Embedding.Provider, appSettings.Embedding.Model,
		configuredMark(appSettings.Embedding.IsConfigured()))
	cmd.Printf("Chat model: %s / %s%s\n",
		appSettings.Model.Provider, appSettings.Model.Model,
		configuredMark(appSettings.Model.IsConfigured()))
	cmd.Printf("Index: %s", appSettings.Index.Backend)
	if appSettings.Index.Path != "" {
		cmd.Printf(" (%s)", appSettings.Index.Path)
	}
	cmd.Println()

	feed := appSettings.Feed.Path
	if feed == "" {
		feed = "built-in seed corpus"
	}
	cmd.Printf("Feed: %s\n", feed)

	if appSettings.Cache.Enabled {
		cmd.Printf("Embedding cache: %d entries, %ds TTL\n", appSettings.Cache.Size, appSettings.Cache.TTLSeconds)
	} else {
		cmd.Println("Embedding cache: disabled")
	}
	cmd.Printf("Response style: %s\n", appSettings.Chat.Style)
	return nil
}

func configuredMark(ok bool) string {
	if ok {
		return ""
	}
	return "  (not configured)"
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if err := ensureSettings(); err != nil {
		return err
	}

	if err := settingsStore.Save(appSettings); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", settingsStore.Path())
	return nil
}
