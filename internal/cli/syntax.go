package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

//go:embed topics/syntax.md
var syntaxTopic string

// renderMarkdown renders markdown for the terminal, returning it unchanged
// when glamour cannot
func renderMarkdown(markdown string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

func newSyntaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: MsgSyntaxShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := syntaxTopic
			if stdoutIsTerminal() {
				content = renderMarkdown(syntaxTopic, pterm.GetTerminalWidth())
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}
