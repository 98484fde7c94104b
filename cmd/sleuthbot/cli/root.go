package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sleuthbot/internal/bot"
	"sleuthbot/internal/config"
	"sleuthbot/internal/observe"
	"sleuthbot/internal/render"
	"sleuthbot/internal/ui"
)

var (
	verbose    bool
	ciMode     bool
	configPath string
)

// RootCmd is the base command.
var RootCmd = &cobra.Command{
	Use:   "sleuthbot",
	Short: "Conversational front-end for a data exposure search API",
	Long: `Sleuthbot relays chat messages to an external search API and renders
the structured results as text. Queries can be emails, phones, IPs,
usernames, VINs and similar identifiers.`,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat with the bot",
	Run: func(cmd *cobra.Command, args []string) {
		runChat()
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [query]",
	Short: "Run a single query and print the results",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLookup(args[0])
	},
}

// Execute runs the CLI.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// A local .env is convenient in development; absence is fine.
	_ = godotenv.Load()

	RootCmd.AddCommand(chatCmd)
	RootCmd.AddCommand(lookupCmd)
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	RootCmd.PersistentFlags().BoolVar(&ciMode, "ci", false, "JSON log output, non-interactive")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to config file")
}

func runChat() {
	obs := newObserver()
	defer obs.Close()

	b, closeBot, err := buildBot(obs)
	if err != nil {
		obs.Log().Fatal().Err(err).Msg("failed to initialize bot")
	}
	defer closeBot()

	chat := ui.NewChat("local")

	// Drive the busy indicator from bot events.
	b.Events().Subscribe(bot.EventSearchStarted, func(bot.Event) {
		chat.Notify("searching")
	})

	if err := chat.Run(context.Background(), b); err != nil {
		obs.Log().Error().Err(err).Msg("chat terminated with error")
		os.Exit(1)
	}
}

func runLookup(query string) {
	// Replies go to stdout; keep logs out of the way unless asked for.
	obs := observe.NewSilent()
	if verbose {
		obs = newObserver()
	}
	defer obs.Close()

	client, apiKey, closeStore, err := buildClient(obs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeStore()

	result, err := client.Lookup(context.Background(), query, apiKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(render.Findings(result, query))
}
