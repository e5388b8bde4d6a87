package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorBlue       = lipgloss.Color("12")
	ColorCyan       = lipgloss.Color("14")
	ColorGreenCheck = lipgloss.Color("10")
	ColorYellow     = lipgloss.Color("220")
	ColorRed        = lipgloss.Color("196")
)

// Semantic styles.
var (
	// StyleBanner styles the ASCII banner and section headings.
	StyleBanner = lipgloss.NewStyle().Foreground(ColorBlue)

	// StyleNoun styles identifiable nouns: paths, template ids, flags.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles secondary detail.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

const bannerArt = `
 /$$$$$$$                                          /$$   /$$           /$$
| $$__  $$                                        | $$  | $$          | $$
| $$  \  $$ /$$$$$$  /$$    /$$                    | $$  | $$ /$$   /$$| $$$$$$$
| $$  | $$ /$$__  $$| $$  /$$/       /$$$$$$      | $$$$$$$$| $$  | $$| $$__  $$
| $$  | $$| $$$$$$$$ \  $$/$$/       |______/      | $$__  $$| $$  | $$| $$  |  $$
| $$  | $$| $$_____/  \  $$$/                      | $$  | $$| $$  | $$| $$  | $$
| $$$$$$$/|  $$$$$$$   \  $/                       | $$  | $$|  $$$$$$/| $$$$$$$/
|_______/  \_______/    \_/                         |__/  |__/  \______/ |_______/`

// Banner renders the ASCII banner followed by the centered tagline.
func Banner(tagline string) string {
	width := 0
	for _, line := range strings.Split(bannerArt, "\n") {
		if len(line) > width {
			width = len(line)
		}
	}
	pad := (width - len(tagline)) / 2
	if pad < 0 {
		pad = 0
	}
	return StyleBanner.Render(bannerArt+"\n"+strings.Repeat(" ", pad)+tagline) + "\n"
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow warning sign with a message.
func FormatWarning(msg string) string {
	sign := lipgloss.NewStyle().Foreground(ColorYellow).Render("⚠")
	return sign + " " + msg
}

// FormatFailure renders a red cross with a message.
func FormatFailure(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorRed).Render("✖")
	return cross + " " + msg
}
