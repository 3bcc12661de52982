package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mrcise612/ZorinPad/internal/styles"
)

func (m editorModel) View() string {
	switch m.mode {
	case modeOpenPrompt:
		return m.promptView("Open File", m.openFormatsHint())
	case modeSavePrompt:
		return m.promptView("Save As", m.saveFormatsHint())
	case modeRecent:
		return m.recentView()
	case modeConfirmDiscard:
		return m.confirmView("You have unsaved changes. Discard them?")
	case modeConfirmOverwrite:
		return m.confirmView("File changed on disk since it was opened. Overwrite?")
	}
	return m.editView()
}

func (m editorModel) editView() string {
	var b strings.Builder

	b.WriteString(m.ta.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(
		"ctrl+s save • f2 save as • ctrl+o open • ctrl+r recent • ctrl+n new • ctrl+w wrap • ctrl+q quit"))

	return b.String()
}

func (m editorModel) statusLine() string {
	name := "Untitled"
	if m.currentPath != "" {
		name = filepath.Base(m.currentPath)
	}
	if m.dirty {
		name += " " + styles.DirtyStyle.Render("*")
	}

	format := "Text"
	if m.markup {
		format = "HTML"
	}

	text := m.ta.Value()
	pos := fmt.Sprintf("Ln %d, Col %d", m.ta.Line()+1, m.ta.LineInfo().ColumnOffset+1)

	parts := []string{
		name,
		format,
		fmt.Sprintf("Words: %d", wordCount(text)),
		pos,
	}
	if !m.disp.ConverterAvailable() {
		parts = append(parts, styles.DimStyle.Render("pandoc: not found"))
	}

	line := strings.Join(parts, "  │  ")
	if m.status != "" {
		style := styles.SuccessStyle
		if m.statusErr {
			style = styles.ErrorStyle
		}
		line += "  │  " + style.Render(m.status)
	}
	return line
}

func (m editorModel) promptView(title, hint string) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render(hint))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("enter confirm • esc cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m editorModel) recentView() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Recent Files"))
	b.WriteString("\n\n")

	if len(m.prefs.Recent()) == 0 {
		b.WriteString(styles.DimStyle.Render("(No recent files)"))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("esc back"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styles.TableStyle.Render(m.recent.View()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter open • c clear • esc back"))
	b.WriteString("\n")

	return b.String()
}

func (m editorModel) confirmView(question string) string {
	var b strings.Builder

	b.WriteString(styles.WarningStyle.Render("⚠ " + question))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("y/enter yes • n/esc no"))
	b.WriteString("\n")

	return b.String()
}

func (m editorModel) openFormatsHint() string {
	if m.disp.ConverterAvailable() {
		return "Formats: .zpad .html .htm .txt .rtf .docx .odt"
	}
	return "Formats: .zpad .html .htm .txt (install pandoc for .rtf .docx .odt)"
}

func (m editorModel) saveFormatsHint() string {
	if m.disp.ConverterAvailable() {
		return "Formats: .zpad .html .txt .rtf .docx .odt"
	}
	return "Formats: .zpad .html .txt (install pandoc for .rtf .docx .odt)"
}
