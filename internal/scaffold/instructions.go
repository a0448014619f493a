package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/tinashe-code/pole-setup/internal/model"
)

// progressLines narrate the scaffolding step. Downstream scripts may match
// on them, so they are fixed text.
var progressLines = []string{
	"Creating backend structure...",
	"Creating frontend...",
	"Creating GitHub workflows...",
}

// Instructions returns the progress narration followed by the manual
// checklist for the deploy secrets. The text is identical on every
// platform and for every root.
func Instructions() string {
	var b strings.Builder

	for _, line := range progressLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\nManual steps required:\n")
	b.WriteString("1. Go to GitHub repo → Settings → Secrets → Actions\n")
	b.WriteString("2. Add these secrets:\n")
	for _, s := range model.DeploySecrets() {
		fmt.Fprintf(&b, "   - %s: %s\n", s.Name, s.Hint)
	}
	b.WriteString("Setup complete!\n")

	return b.String()
}

// PrintInstructions writes Instructions to w. Write errors are ignored.
func PrintInstructions(w io.Writer) {
	_, _ = io.WriteString(w, Instructions())
}
