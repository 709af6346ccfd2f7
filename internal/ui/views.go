package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ovalkan/folio/internal/emoji"
)

const (
	headerHeight    = 2
	filmstripHeight = 4
	footerHeight    = 3
	chipWidth       = 14
)

// View renders the browse app
func (m *Model) View() string {
	if m.quitting {
		return lipgloss.NewStyle().Foreground(m.theme.Success).Render("Thanks for stopping by.") + "\n"
	}
	if !m.ready {
		return "Loading portfolio..."
	}

	switch {
	case m.loading:
		return m.renderNotice(m.theme.Secondary, "Loading portfolio...")
	case m.loadErr != nil:
		return m.renderNotice(m.theme.Error, emoji.GetEmoji("error")+" "+m.loadErr.Error())
	case m.dir == nil || m.dir.Len() == 0:
		return m.renderNotice(m.theme.Muted, "No projects published yet.")
	case m.detailOpen:
		return m.renderDetail()
	default:
		return m.renderBrowse()
	}
}

func (m *Model) renderNotice(color lipgloss.AdaptiveColor, text string) string {
	notice := lipgloss.NewStyle().Foreground(color).Bold(true).Render(text)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, notice)
}

func (m *Model) renderBrowse() string {
	showcaseHeight := m.height - headerHeight - footerHeight
	if m.showFilmstrip() {
		showcaseHeight -= filmstripHeight
	}
	if showcaseHeight < 3 {
		showcaseHeight = 3
	}

	sections := []string{
		m.renderHeader(),
		m.renderShowcase(showcaseHeight),
	}
	if m.showFilmstrip() {
		sections = append(sections, m.renderFilmstrip())
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).
		Render(emoji.GetEmoji("portfolio") + " folio")

	position := ""
	if p, ok := m.dir.At(m.stableIdx); ok {
		position = fmt.Sprintf("%s  %d/%d", p.Title, m.stableIdx+1, m.dir.Len())
	}
	right := lipgloss.NewStyle().Foreground(m.theme.Secondary).Render(position)

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right + "\n"
}

// renderShowcase renders the master track: a window over the horizontally
// joined slide cards, shifted by the fractional scroll offset so drags and
// inertia read as continuous motion.
func (m *Model) renderShowcase(height int) string {
	w := m.width
	off := m.master.Offset()
	first := int(math.Floor(off))
	shift := int(math.Round((off - float64(first)) * float64(w)))

	current := m.renderCard(first, w, height)
	if shift == 0 {
		return current
	}

	next := m.renderCard(first+1, w, height)
	joined := lipgloss.JoinHorizontal(lipgloss.Top, current, next)

	lines := strings.Split(joined, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, shift, shift+w)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCard(index, w, height int) string {
	p, ok := m.dir.At(index)
	if !ok {
		return lipgloss.NewStyle().Width(w).Height(height).Render("")
	}

	borderColor := m.theme.Border
	accent := lipgloss.Color(p.Accent)
	if p.Accent != "" {
		borderColor = lipgloss.AdaptiveColor{Light: p.Accent, Dark: p.Accent}
	}

	title := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(p.Title)
	var parts []string
	parts = append(parts, title)
	if p.Tagline != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(m.theme.Secondary).Italic(true).Render(p.Tagline))
	}
	if len(p.Tags) > 0 {
		chip := lipgloss.NewStyle().Foreground(m.theme.Accent)
		if p.Accent != "" {
			chip = chip.Foreground(accent)
		}
		parts = append(parts, chip.Render(strings.Join(p.Tags, " · ")))
	}
	meta := make([]string, 0, 3)
	if p.Year > 0 {
		meta = append(meta, fmt.Sprintf("%s %d", emoji.GetEmoji("calendar"), p.Year))
	}
	if p.Repo != "" {
		meta = append(meta, emoji.GetEmoji("link")+" "+p.Repo)
	}
	if p.NDA {
		meta = append(meta, lipgloss.NewStyle().Foreground(m.theme.Warning).Render(emoji.GetEmoji("lock")+" NDA"))
	}
	if len(meta) > 0 {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(meta, "   ")))
	}

	inner := lipgloss.JoinVertical(lipgloss.Center, parts...)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(w - 2).
		Height(height - 2)

	return card.Render(lipgloss.Place(w-2, height-2, lipgloss.Center, lipgloss.Center, inner))
}

// renderFilmstrip renders the slave track: one chip per project, the window
// centered on the slave's own offset so it visibly mirrors the master.
func (m *Model) renderFilmstrip() string {
	n := m.dir.Len()
	chips := make([]string, 0, n)
	for i := 0; i < n; i++ {
		chips = append(chips, m.renderChip(i))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	total := n * chipWidth

	if total <= m.width {
		return lipgloss.Place(m.width, filmstripHeight, lipgloss.Center, lipgloss.Top, strip)
	}

	shift := int(math.Round(m.film.Offset()*chipWidth)) - (m.width-chipWidth)/2
	if shift < 0 {
		shift = 0
	}
	if shift > total-m.width {
		shift = total - m.width
	}
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, shift, shift+m.width)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderChip(index int) string {
	p, _ := m.dir.At(index)
	label := p.Slug
	if len(label) > chipWidth-4 {
		label = label[:chipWidth-5] + "…"
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		Foreground(m.theme.Muted).
		Width(chipWidth - 2).
		Align(lipgloss.Center)
	if index == m.stableIdx {
		style = style.
			BorderForeground(m.theme.Primary).
			Foreground(m.theme.Primary).
			Bold(true)
	}
	return style.Render(label)
}

func (m *Model) renderFooter() string {
	back := emoji.GetEmoji("left")
	fwd := emoji.GetEmoji("right")
	backStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	fwdStyle := backStyle
	if m.history.CanBack() {
		backStyle = lipgloss.NewStyle().Foreground(m.theme.Primary)
	}
	if m.history.CanForward() {
		fwdStyle = lipgloss.NewStyle().Foreground(m.theme.Primary)
	}
	address := lipgloss.NewStyle().Foreground(m.theme.Highlight).Render(m.history.Current())
	bar := fmt.Sprintf("%s %s  %s", backStyle.Render(back), fwdStyle.Render(fwd), address)

	status := ""
	if m.status != "" {
		status = lipgloss.NewStyle().Foreground(m.statusColor).Bold(true).Render(m.status)
	}
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}

	return "\n" + bar + strings.Repeat(" ", gap) + status + "\n" + m.help.View(m.keys)
}

func (m *Model) renderDetail() string {
	if m.detail == "" {
		m.detail = m.renderBrief()
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(0, 2).
		Width(min(m.width-4, 96))

	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("esc to go back")
	content := lipgloss.JoinVertical(lipgloss.Left, m.detail, hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(content))
}

// renderBrief runs the project brief through glamour. Falls back to the raw
// markdown when rendering fails.
func (m *Model) renderBrief() string {
	p, ok := m.dir.At(m.stableIdx)
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", p.Tagline)
	}
	if p.Description != "" {
		b.WriteString(strings.TrimSpace(p.Description))
		b.WriteString("\n")
	}
	if p.Repo != "" || p.URL != "" {
		b.WriteString("\n## Links\n\n")
		if p.Repo != "" {
			fmt.Fprintf(&b, "- Repository: %s\n", p.Repo)
		}
		if p.URL != "" {
			fmt.Fprintf(&b, "- Live: %s\n", p.URL)
		}
	}

	wrap := min(m.width-12, 88)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return b.String()
	}
	out, err := renderer.Render(b.String())
	if err != nil {
		m.log.Warn("failed to render project brief: %v", err)
		return b.String()
	}
	return strings.TrimRight(out, "\n")
}
