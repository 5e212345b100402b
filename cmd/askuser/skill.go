package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agentui/askuser/internal/config"
	"github.com/agentui/askuser/skill"
)

var (
	flagRender    bool
	flagSkillDirs []string
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Print the question-asking skill document",
	Long: `Print the embedded skill document that teaches an agent when and how
to ask questions. With --render the markdown is formatted for the
terminal instead of printed raw.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagRender {
			fmt.Println(skill.Raw())
			return nil
		}

		width := 100
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		if width < 40 {
			width = 80
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width-4),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := renderer.Render(skill.Default().Content)
		if err != nil {
			return fmt.Errorf("rendering skill: %w", err)
		}
		fmt.Println(strings.TrimRight(out, "\n"))
		return nil
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skill documents found on disk",
	Long: `Search the configured skill directories for SKILL.md files and list
them. Directories given with --dirs take precedence over the
configured ones, and earlier directories win on name collisions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := flagSkillDirs
		if len(dirs) == 0 {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			dirs = config.Load(cwd).SkillDirs
		}

		skills := skill.Discover(dirs...)
		if len(skills) == 0 {
			fmt.Println("no skills found")
			return nil
		}
		for _, s := range skills {
			line := s.Name
			if s.Description != "" {
				line += " — " + s.Description
			}
			if s.Trigger != "" {
				line += " (trigger: " + s.Trigger + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	skillCmd.Flags().BoolVar(&flagRender, "render", false, "render the markdown for the terminal")
	skillListCmd.Flags().StringSliceVar(&flagSkillDirs, "dirs", nil, "directories to search for SKILL.md files")
	skillCmd.AddCommand(skillListCmd)
	rootCmd.AddCommand(skillCmd)
}
