package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	tea "github.com/charmbracelet/bubbletea"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeRename && m.renameForm != nil {
		return m.viewRenameForm()
	}
	return m.viewList()
}

func (m *Model) viewList() string {
	lines := make([]styledLine, 0, 16)
	if title := strings.TrimSpace(m.cfg.Title); title != "" {
		lines = append(lines, styledLine{text: title, style: styles.Header})
	}
	switch {
	case m.loading:
		lines = append(lines, styledLine{text: "Loading refs…", style: styles.Loading})
	case len(m.list.Items) == 0:
		msg := "(no branches)"
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	default:
		m.syncViewport()
		start := 0
		displayItems := m.list.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = m.list.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				m.list.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		for i, item := range displayItems {
			idx := start + i
			lines = append(lines, m.buildItemLine(item.Label, idx, item.Current))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.cfg.ShowFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  esc cancel  ctrl+c quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	switch {
	case m.mode == ModeConfirm && m.confirmItem != nil:
		text := fmt.Sprintf("%s %s? (y/n)", confirmVerb(m.cfg.ActionName), m.confirmItem.ID)
		statusLine = styledLine{text: text, style: styles.Confirm}
	case m.errMsg != "":
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText := m.filterPrompt()
	bottomLines := applyWidth([]styledLine{statusLine}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines) + "\n" + promptText
}

func (m *Model) viewRenameForm() string {
	lines := make([]styledLine, 0, 8)
	if title := strings.TrimSpace(m.cfg.Title); title != "" {
		lines = append(lines, styledLine{text: title, style: styles.Header})
	}
	lines = append(lines, styledLine{text: m.renameForm.Title(), style: styles.Info})
	lines = append(lines, styledLine{})
	if errText := m.renameForm.Error(); errText != "" {
		lines = append(lines, styledLine{text: errText, style: styles.Error})
	} else {
		lines = append(lines, styledLine{})
	}
	lines = append(lines, styledLine{text: m.renameForm.Help(), style: styles.Footer})
	lines = applyWidth(lines, m.width)
	return renderLines(lines) + "\n" + m.renameForm.InputView()
}

func confirmVerb(actionName string) string {
	if actionName == "" {
		return "Run"
	}
	runes := []rune(actionName)
	return strings.ToUpper(string(runes[:1])) + string(runes[1:])
}

// buildItemLine constructs a single styledLine for a picker row.
func (m *Model) buildItemLine(label string, idx int, current bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if current {
		lineStyle = styles.CurrentBranch
	}
	if idx == m.list.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: status + filter prompt
	if strings.TrimSpace(m.cfg.Title) != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.cfg.ShowFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
