package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(translate func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion adds the tool version to the report footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Decode Summary"))
	fmt.Fprintf(&sb, "%s: %s\n\n", t("Generated"), summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&sb, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Components"), orDash(summary.Settings.Components))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Animation"), orDash(summary.Settings.Animated))
	maxFrames := t("All")
	if summary.Settings.MaxFrames > 0 {
		maxFrames = fmt.Sprintf("%d", summary.Settings.MaxFrames)
	}
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Max Frames"), maxFrames)
	fmt.Fprintf(&sb, "| %s | %d |\n", t("Workers"), summary.Settings.Workers)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Contact Sheets"), f.yesNo(summary.Settings.Sheet))
	if summary.Settings.OutputDir != "" {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Output Directory"), summary.Settings.OutputDir)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", t("Files"))
	if len(summary.Files) == 0 {
		fmt.Fprintf(&sb, "%s\n\n", t("No files were processed."))
	} else {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n|---|---|---|---|---|---|\n",
			t("File"), t("Size"), t("Components"), t("Frames"), t("Duration"), t("Result"))
		for _, file := range summary.Files {
			if file.Error != "" {
				fmt.Fprintf(&sb, "| %s | - | - | - | - | %s: %s |\n", file.Path, t("Failed"), escapePipes(file.Error))
				continue
			}
			duration := "-"
			if file.Animated {
				duration = fmt.Sprintf("%d ms", file.DurationMs)
			}
			fmt.Fprintf(&sb, "| %s | %dx%d | %d → %d | %d | %s | %s |\n",
				file.Path, file.Width, file.Height, file.SourceComp, file.Comp, file.Frames, duration, t("OK"))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## %s\n\n", t("Totals"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&sb, "| %s | %d |\n", t("Files"), summary.Totals.Files)
	fmt.Fprintf(&sb, "| %s | %d |\n", t("Succeeded"), summary.Totals.Succeeded)
	fmt.Fprintf(&sb, "| %s | %d |\n", t("Failed"), summary.Totals.Failed)
	fmt.Fprintf(&sb, "| %s | %d |\n", t("Frames"), summary.Totals.Frames)
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Decoded Pixels"), formatBytes(summary.Totals.PixelBytes))

	if f.version != "" {
		fmt.Fprintf(&sb, "\n---\n\nimgstream %s\n", f.version)
	}

	return sb.String()
}

func (f *MarkdownFormatter) yesNo(b bool) string {
	if b {
		return f.translate("Yes")
	}
	return f.translate("No")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// formatBytes formats a byte count with binary units.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
