package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

//go:embed usage.md
var usageMD string

func newDocsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Show usage documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), usageMD)
				return err
			}
			// Avoid WithAutoStyle: it can block waiting on terminal queries
			// in some setups.
			style := "light"
			if lipgloss.HasDarkBackground() {
				style = "dark"
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(style),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				_, werr := fmt.Fprint(cmd.OutOrStdout(), usageMD)
				return werr
			}
			out, err := r.Render(usageMD)
			if err != nil {
				out = usageMD
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown without rendering")
	return cmd
}
