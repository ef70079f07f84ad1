package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview <file.md>",
		Short: "Render a content file in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var fm struct {
				Title string `yaml:"title"`
				Date  string `yaml:"date"`
			}
			body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
			if err != nil {
				return fmt.Errorf("parsing frontmatter: %w", err)
			}

			var sb strings.Builder
			if fm.Title != "" {
				fmt.Fprintf(&sb, "# %s\n\n", fm.Title)
			}
			if fm.Date != "" {
				fmt.Fprintf(&sb, "> %s\n\n", fm.Date)
			}
			sb.Write(body)

			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}

			out, err := r.Render(sb.String())
			if err != nil {
				return fmt.Errorf("rendering markdown: %w", err)
			}

			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")

	return cmd
}
