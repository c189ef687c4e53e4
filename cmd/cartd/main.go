package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/sandeepkv93/cartd/internal/app"
	"github.com/sandeepkv93/cartd/internal/commands"
	"github.com/sandeepkv93/cartd/internal/config"
	"github.com/sandeepkv93/cartd/internal/logging"
	"github.com/sandeepkv93/cartd/internal/update"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "cartd",
		Short: "Terminal grocery list manager",
		Long: `cartd keeps one grocery list with categories, prices and a budget,
remembers what you bought to suggest it again, and pulls recipe
ingredients straight onto the list.

Run without a subcommand to open the terminal UI.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to cartd.yaml (default: ./cartd.yaml or <data-dir>/cartd.yaml)")
	rootCmd.PersistentFlags().String("store", "", "Storage backend: sqlite|json|memory")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the database, json store and log file")

	execCmd := &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run one palette command, e.g. exec add milk qty:2 price:3.49",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExec,
	}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the current list grouped by category",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show items you usually buy that are not on the list",
		Args:  cobra.NoArgs,
		RunE:  runSuggest,
	}
	suggestCmd.Flags().Int("accept", 0, "Add the n-th suggestion to the list")
	suggestCmd.Flags().Bool("all", false, "Add every suggestion to the list")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Print frequent items and recent purchases",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	historyCmd.Flags().Int("limit", 10, "Number of recent purchases to print")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the list, purchase history and preferences",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")

	rootCmd.AddCommand(execCmd, lsCmd, suggestCmd, historyCmd, resetCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "cartd: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// openSession loads config from the persistent flags and opens the store.
// The returned func closes the store and the log file.
func openSession(cmd *cobra.Command) (*app.App, func(), error) {
	configPath, _ := cmd.Flags().GetString("config")
	store, _ := cmd.Flags().GetString("store")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.Override(dataDir, store)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, logCloser, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	session, err := app.Open(cmd.Context(), cfg, log)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, err
	}
	cleanup := func() {
		if err := session.Close(); err != nil {
			log.Error().Err(err).Msg("close store failed")
		}
		_ = logCloser.Close()
	}
	return session, cleanup, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	program := tea.NewProgram(update.NewModel(cmd.Context(), session), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func runExec(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := commands.Run(joinArgs(args), session.Handlers(cmd.Context()))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Fprintln(cmd.OutOrStdout(), formatList(session.List.List()))
	fmt.Fprintln(cmd.OutOrStdout(), session.Summary())
	if at, ok := session.LastSaved(cmd.Context()); ok {
		fmt.Fprintln(cmd.OutOrStdout(), "saved "+humanize.Time(at))
	}
	return nil
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	accept, err := cmd.Flags().GetInt("accept")
	if err != nil {
		return fmt.Errorf("failed to read --accept flag: %w", err)
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to read --all flag: %w", err)
	}

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	args := commands.SuggestArgs{Accept: accept, AcceptAll: all}
	res, err := commands.Execute(commands.Command{Type: commands.TypeSuggest, Raw: "suggest", Suggest: &args}, session.Handlers(cmd.Context()))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to read --limit flag: %w", err)
	}

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Fprintln(cmd.OutOrStdout(), formatHistory(session.History.History(), limit))
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return fmt.Errorf("failed to read --yes flag: %w", err)
	}
	if !yes {
		return fmt.Errorf("reset deletes the list and history; rerun with --yes")
	}

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	session.Reset(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), "list, history and preferences cleared")
	return nil
}

// joinArgs rebuilds a palette line from shell arguments, quoting the ones
// that contain spaces.
func joinArgs(args []string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if strings.ContainsAny(a, " \t") && !strings.Contains(a, `"`) {
			a = `"` + a + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
