package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/liblift/pkg/bundle"
	"github.com/arthur-debert/liblift/pkg/embedder"
)

// Plain reports whether styled output should be suppressed because
// stdout is not a terminal
func Plain() bool {
	return !isatty.IsTerminal(os.Stdout.Fd())
}

// RenderEmbedReport renders the human-facing summary of an embedding run
func RenderEmbedReport(result *embedder.Result, layout bundle.Layout) string {
	plain := Plain()
	styled := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder

	if len(result.Libraries) == 0 {
		b.WriteString(styled(SuccessStyle, "Bundle already self-contained") + "\n")
	} else {
		b.WriteString(styled(TitleStyle,
			fmt.Sprintf("Embedded %d libraries into %s", len(result.Libraries), layout.LibraryDir())) + "\n")
		for _, lib := range result.Libraries {
			line := fmt.Sprintf("%s  %s", lib.Name, styled(MutedStyle, lib.Source))
			b.WriteString(styled(ListItemStyle, line) + "\n")
		}
	}

	b.WriteString(styled(MutedStyle, fmt.Sprintf("%d references rewritten", result.Rewrites)) + "\n")
	return b.String()
}
