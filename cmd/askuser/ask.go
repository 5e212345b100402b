package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agentui/askuser/ask"
	"github.com/agentui/askuser/askui"
	"github.com/agentui/askuser/internal/config"
)

var (
	flagQuestion   string
	flagContext    string
	flagOptions    []string
	flagMultiple   bool
	flagNoFreeform bool
	flagJSON       bool
	flagWidth      int
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Present a question and print the answer",
	Long: `Present a question in the terminal and print the outcome.

Options are given as repeated -o flags, each either a bare title or
"title:description". With no options the question is a free text
prompt. The exit status is 1 when the user cancels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(flagQuestion) == "" {
			return fmt.Errorf("a question is required")
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		settings := config.Load(cwd)

		req := ask.Request{
			Question:      flagQuestion,
			Context:       flagContext,
			Options:       parseOptions(flagOptions),
			AllowMultiple: flagMultiple,
			AllowFreeform: !flagNoFreeform,
		}

		tool := ask.New(buildSurface(settings))
		res := tool.Ask(cmd.Context(), req)

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
		} else {
			fmt.Println(res.Content)
		}

		if res.Cancelled() {
			os.Exit(1)
		}
		return nil
	},
}

// parseOptions turns -o values into options, splitting each on the
// first colon into title and description.
func parseOptions(raw []string) []ask.Option {
	opts := make([]ask.Option, 0, len(raw))
	for _, r := range raw {
		title, desc, found := strings.Cut(r, ":")
		opt := ask.Option{Title: strings.TrimSpace(title)}
		if found {
			opt.Description = strings.TrimSpace(desc)
		}
		opts = append(opts, opt)
	}
	return opts
}

// buildSurface picks the interactive surface for the current terminal,
// or nil when stdout is not a TTY so the tool falls back to its
// non-interactive block.
func buildSurface(settings *config.Settings) ask.Surface {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}

	surface := askui.NewTerminalSurface()
	if flagWidth > 0 {
		surface.Width = flagWidth
	}
	surface.MaxVisible = config.IntVal(settings.MaxVisibleRows, surface.MaxVisible)
	surface.DiscardSelectionsOnFreeform = !config.BoolVal(settings.PreserveSelections, true)
	if settings.Theme == "light" {
		surface.Theme = askui.LightTheme()
	}
	return surface
}

func init() {
	askCmd.Flags().StringVarP(&flagQuestion, "question", "q", "", "question to ask (required)")
	askCmd.Flags().StringVar(&flagContext, "context", "", "background shown above the question")
	askCmd.Flags().StringArrayVarP(&flagOptions, "option", "o", nil, `choice as "title" or "title:description" (repeatable)`)
	askCmd.Flags().BoolVar(&flagMultiple, "multiple", false, "allow selecting more than one option")
	askCmd.Flags().BoolVar(&flagNoFreeform, "no-freeform", false, "disable the write-your-own-answer row")
	askCmd.Flags().BoolVar(&flagJSON, "json", false, "print the full result as JSON")
	askCmd.Flags().IntVar(&flagWidth, "width", 0, "override the rendered width")
	_ = askCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(askCmd)
}
