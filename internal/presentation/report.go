package presentation

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	trashion "github.com/totobolto-dev/trashion-api"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

// StatusReport builds a markdown report of the monitor status and the latest
// snapshot.
func StatusReport(st trashion.Status, snap *scrape.Snapshot) string {
	var b strings.Builder

	b.WriteString("# Trashion Inventory\n\n")
	fmt.Fprintf(&b, "- **Business hours:** %s\n", st.BusinessHours)
	fmt.Fprintf(&b, "- **Currently open:** %v\n", st.WithinHours)
	fmt.Fprintf(&b, "- **Monitoring:** %v\n", st.MonitoringActive)
	fmt.Fprintf(&b, "- **Notifications:** %v\n", st.Notifications)

	if snap == nil {
		b.WriteString("\nNo snapshot yet. Run `trashion scrape` during business hours.\n")
		return b.String()
	}

	b.WriteString("\n## Latest snapshot\n\n")
	fmt.Fprintf(&b, "- **Items:** %d\n", snap.Count)
	fmt.Fprintf(&b, "- **Taken:** %s\n", snap.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- **Load More clicks:** %d\n", snap.Clicks)
	if snap.Note != "" {
		fmt.Fprintf(&b, "- **Note:** %s\n", snap.Note)
	}

	return b.String()
}

// Render prints markdown through glamour when stdout is a terminal, and as
// plain text otherwise (pipes, CI).
func Render(markdown string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return markdown
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
