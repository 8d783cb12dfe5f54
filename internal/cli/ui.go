package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. The accents reuse the pyramid's group colors so the
// terminal output matches the rendered SVG.
var (
	colorCyan   = lipgloss.Color("#0ea5e9")
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorBlue   = lipgloss.Color("#60a5fa")
	colorWhite  = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	colorGray   = lipgloss.Color("#9ca3af")
	colorDim    = lipgloss.Color("#6b7280")
)

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleLink    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

// statusKind pairs an icon with its color.
type statusKind struct {
	icon  string
	style lipgloss.Style
}

var (
	statusSuccess = statusKind{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	statusError   = statusKind{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	statusWarning = statusKind{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	statusInfo    = statusKind{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

// stdout receives all human-oriented output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

func printStatus(k statusKind, msg string) {
	fmt.Fprintln(stdout, k.style.Render(k.icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	printStatus(statusSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(statusError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(statusWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(statusInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile reports a written artifact and whether it came from the cache.
func printFile(path string, cached bool) {
	status := StyleDim.Render("fresh")
	if cached {
		status = StyleSuccess.Render("cached")
	}
	fmt.Fprintf(stdout, "  %s %s %s\n", StyleDim.Render("→"), StyleValue.Render(path), status)
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints "N bands · M brackets · elapsed".
func printStats(bands, brackets int, elapsed time.Duration) {
	line := strings.Join([]string{
		fmt.Sprintf("%d bands", bands),
		fmt.Sprintf("%d brackets", brackets),
		elapsed.Round(time.Millisecond).String(),
	}, " · ")
	printDetail("%s", line)
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
