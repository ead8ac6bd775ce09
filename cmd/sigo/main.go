package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abatilo/sigo/internal/config"
	"github.com/abatilo/sigo/internal/logs"
	"github.com/abatilo/sigo/internal/output"
	"github.com/abatilo/sigo/internal/storage"
)

//nolint:gochecknoglobals // CLI flags, config, logger and formatter are package-level by design
var (
	jsonOutput bool
	verbose    bool
	configPath string
	cfg        *config.Config
	formatter  output.Formatter
	logger     = slog.New(slog.DiscardHandler)
	closeLog   = func() error { return nil }
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sigo",
		Short: "A simple personal task tracker",
		Long:  "sigo - A simple personal task tracker with ready, waiting and completed lists.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			formatter = output.NewJSONFormatter()
			loaded, err := config.Load(configPath)
			if err != nil {
				if !jsonOutput {
					formatter = output.NewHumanFormatter(config.ModeSimple)
				}
				printError(err)
			}
			cfg = loaded
			if !jsonOutput {
				formatter = output.NewHumanFormatter(cfg.Mode)
			}

			l, closeFn, err := logs.New(os.Stderr, verbose, cfg.LogFile)
			if err != nil {
				printError(err)
			}
			logger, closeLog = l, closeFn
			logger.Debug("loaded config", "path", configPath, "data", cfg.Data, "mode", cfg.Mode)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = closeLog()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		waitingCmd(),
		completedCmd(),
		doneCmd(),
		waitCmd(),
		backCmd(),
		annotateCmd(),
		modifyCmd(),
		configCmd(),
	)

	return rootCmd
}

func getStore() *storage.Store {
	return storage.NewStoreWithPath(cfg.Data)
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printEvent(e output.Event) {
	logger.Debug("command finished", "event", string(e.Kind), "id", e.ID)
	printOutput(formatter.FormatEvent(e))
}

func printError(err error) {
	logger.Debug("command failed", "error", err)
	_ = closeLog()
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// addCmd implements 'sigo add'.
func addCmd() *cobra.Command {
	var priority, due string
	var waiting bool
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			p, err := parsePriority(priority)
			if err != nil {
				printError(err)
			}
			d, err := parseDue(due, time.Now())
			if err != nil {
				printError(err)
			}

			e, err := runAdd(getStore(), strings.Join(args, " "), p, d, waiting)
			if err != nil {
				printError(err)
			}
			printEvent(e)
		},
	}
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (H, M, L)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (today, eow, eom, yyyy-mm-dd)")
	cmd.Flags().BoolVarP(&waiting, "waiting", "w", false, "Create the task as waiting")
	return cmd
}

// listCmd implements 'sigo list'.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ready tasks",
		Run: func(_ *cobra.Command, _ []string) {
			tasks, err := storage.ListReady(getStore())
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTaskList(readyParams(tasks)))
		},
	}
}

// waitingCmd implements 'sigo waiting'.
func waitingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "waiting",
		Short: "List waiting tasks",
		Run: func(_ *cobra.Command, _ []string) {
			tasks, err := storage.ListWaiting(getStore())
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTaskList(waitingParams(tasks)))
		},
	}
}

// completedCmd implements 'sigo completed'.
func completedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completed",
		Short: "List completed tasks",
		Run: func(_ *cobra.Command, _ []string) {
			tasks, err := storage.ListCompleted(getStore())
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatCompletedList(tasks))
		},
	}
}

// doneCmd implements 'sigo done'.
func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			e, err := runDone(getStore(), id)
			if err != nil {
				printError(err)
			}
			printEvent(e)
		},
	}
}

// waitCmd implements 'sigo wait'.
func waitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wait <id> [text]",
		Short: "Move a ready task to waiting",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			e, err := runWait(getStore(), id, optionalText(args[1:]))
			if err != nil {
				printError(err)
			}
			printEvent(e)
		},
	}
}

// backCmd implements 'sigo back'.
func backCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "back <id> [text]",
		Short: "Move a waiting task back to ready",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			e, err := runBack(getStore(), id, optionalText(args[1:]))
			if err != nil {
				printError(err)
			}
			printEvent(e)
		},
	}
}

// annotateCmd implements 'sigo annotate'.
func annotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate <id> <text>",
		Short: "Append a line to a task's description",
		Args:  cobra.MinimumNArgs(2), //nolint:mnd // id plus at least one word of text
		Run: func(_ *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			e, err := runAnnotate(getStore(), id, strings.Join(args[1:], " "))
			if err != nil {
				printError(err)
			}
			printEvent(e)
		},
	}
}

// modifyCmd implements 'sigo modify'.
func modifyCmd() *cobra.Command {
	var text, priority, due string
	cmd := &cobra.Command{
		Use:   "modify <id>",
		Short: "Change a task's description, priority or due date",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			p, err := parsePriority(priority)
			if err != nil {
				printError(err)
			}
			d, err := parseDue(due, time.Now())
			if err != nil {
				printError(err)
			}

			var newText *string
			if c.Flags().Changed("text") {
				newText = &text
			}
			e, err := runModify(getStore(), id, newText, p, d)
			if err != nil {
				printError(err)
			}
			printEvent(e)
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "New primary description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (H, M, L)")
	cmd.Flags().StringVar(&due, "due", "", "New due date (today, eow, eom, yyyy-mm-dd)")
	return cmd
}

// configCmd implements the 'sigo config' command group.
func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Config file management",
		// Replaces the root hook so a broken config file can still be rewritten.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter(config.ModeSimple)
			}
		},
	}

	cmd.AddCommand(
		configPathCmd(),
		configInitCmd(),
	)

	return cmd
}

// configPathCmd implements 'sigo config path'.
func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Run: func(_ *cobra.Command, _ []string) {
			printOutput(formatter.FormatMessage(configPath))
		},
	}
}

// configInitCmd implements 'sigo config init'.
func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Run: func(_ *cobra.Command, _ []string) {
			if err := config.WriteDefault(configPath, force); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Wrote config to %s", configPath)))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
