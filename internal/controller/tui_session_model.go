package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/keytrim/internal/model"
)

type tickMsg time.Time

type phase int

const (
	phaseBuilding phase = iota
	phasePlan
	phaseReview
	phaseConfirm
	phaseExecuting
	phaseResult
	phaseReports
)

// rowDelegate renders plan, outcome and report rows on a single line.
type rowDelegate struct {
	offset int
}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	var marker, text string

	var markerStyle lipgloss.Style

	switch row := item.(type) {
	case planRow:
		marker = checkbox(row.item.Selected)
		text = fmt.Sprintf("%s → %s", row.item.CurrentName, row.item.NewName)
		markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	case outcomeRow:
		marker = fmt.Sprintf("%-7s", row.outcome.Status)
		text = fmt.Sprintf("%s → %s", row.outcome.Item.CurrentName, row.outcome.DisplayName())
		markerStyle = statusStyle(row.outcome.Status)
	case reportRow:
		marker = fmt.Sprintf("%-8s", shortID(row.report.ID))
		text = row.summary() + "  " + string(row.report.Folder)
		markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	default:
		return
	}

	width := l.Width() - lipgloss.Width(marker) - 2

	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	var displayText string

	if index == l.Index() {
		highlight := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		markerStyle = highlight
		textStyle = highlight
		displayText = animateScroll(text, width, d.offset)
	} else {
		displayText = truncateToWidth(text, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", markerStyle.Render(marker), textStyle.Render(displayText))
}

func statusStyle(status m.OutcomeStatus) lipgloss.Style {
	switch status {
	case m.StatusRenamed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case m.StatusSkipped:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// sessionModel follows one workflow run: build progress, the plan, the
// optional review, execute progress and the result, or stored reports.
type sessionModel struct {
	mode            StartMode
	phase           phase
	width           int
	height          int
	progressBar     progress.Model
	progressPercent float64
	plan            m.Plan
	err             error
	builtAt         time.Time
	items           []m.PlanItem
	reply           chan<- []m.PlanItem
	result          m.Result
	reports         []m.Report
	notice          string
	rows            list.Model
	delegate        rowDelegate
	animOffset      int
	lastSelected    int
}

func newSessionModel(mode StartMode) sessionModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := rowDelegate{}
	rows := list.New([]list.Item{}, delegate, 80, 20)
	rows.SetShowPagination(false)
	rows.SetShowFilter(true)
	rows.SetShowHelp(false)
	rows.SetShowTitle(false)
	rows.SetShowStatusBar(false)
	rows.FilterInput.Placeholder = "Filter by name…"

	start := phaseBuilding
	if mode == ModeView {
		start = phaseReports
	}

	return sessionModel{
		mode:         mode,
		phase:        start,
		progressBar:  prog,
		rows:         rows,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (s sessionModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s = s.handleWindowSize(msg)

	case tickMsg:
		return s.handleTick()

	case tea.KeyMsg:
		return s.handleKey(msg)

	case buildProgressMsg:
		if s.phase == phaseBuilding || s.phase == phasePlan {
			s.progressPercent = msg.fraction
		}

	case planMsg:
		s = s.handlePlan(msg)

	case reviewRequestMsg:
		s = s.handleReviewRequest(msg)

	case noticeMsg:
		s.notice = msg.text

	case executeProgressMsg:
		s.phase = phaseExecuting
		s.progressPercent = msg.fraction

	case resultMsg:
		s = s.handleResult(msg)

	case reportsMsg:
		s = s.handleReports(msg)
	}

	return s, cmd
}

func (s sessionModel) handleWindowSize(msg tea.WindowSizeMsg) sessionModel {
	s.width = msg.Width
	s.height = msg.Height

	s.progressBar.Width = s.width - 8
	if s.progressBar.Width < 20 {
		s.progressBar.Width = 20
	}

	return s
}

func (s sessionModel) handleTick() (sessionModel, tea.Cmd) {
	if s.rows.FilterState() != list.Filtering {
		s.animOffset++
		s.delegate.offset = s.animOffset
		s.rows.SetDelegate(s.delegate)
	}

	return s, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s sessionModel) handlePlan(msg planMsg) sessionModel {
	s.phase = phasePlan
	s.plan = msg.plan
	s.err = msg.err
	s.builtAt = msg.at
	s.progressPercent = 1
	s.notice = ""
	s.items = msg.plan.Items

	return s.setPlanRows()
}

func (s sessionModel) handleReviewRequest(msg reviewRequestMsg) sessionModel {
	s.phase = phaseReview
	s.plan = msg.plan
	s.reply = msg.reply
	s.notice = ""
	s.items = make([]m.PlanItem, len(msg.plan.Items))
	copy(s.items, msg.plan.Items)

	return s.setPlanRows()
}

func (s sessionModel) handleResult(msg resultMsg) sessionModel {
	s.phase = phaseResult
	s.result = msg.result
	s.progressPercent = 1

	rows := make([]list.Item, 0, len(msg.result.Outcomes))
	for _, outcome := range msg.result.Outcomes {
		rows = append(rows, outcomeRow{outcome: outcome})
	}

	s.rows.SetItems(rows)
	s.rows.Select(0)

	return s
}

func (s sessionModel) handleReports(msg reportsMsg) sessionModel {
	s.phase = phaseReports
	s.reports = msg.reports
	s.err = msg.err

	rows := make([]list.Item, 0, len(msg.reports))
	for i := len(msg.reports) - 1; i >= 0; i-- {
		rows = append(rows, reportRow{report: msg.reports[i]})
	}

	s.rows.SetItems(rows)
	s.rows.Select(0)

	return s
}

func (s sessionModel) setPlanRows() sessionModel {
	rows := make([]list.Item, 0, len(s.items))
	for _, item := range s.items {
		rows = append(rows, planRow{item: item})
	}

	s.rows.SetItems(rows)

	return s
}

//nolint:cyclop // Key handling requires multiple cases for the review flow
func (s sessionModel) handleKey(msg tea.KeyMsg) (sessionModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return s.quit()
	}

	if s.rows.FilterState() == list.Filtering {
		return s.updateList(msg)
	}

	switch s.phase {
	case phaseConfirm:
		switch msg.String() {
		case "y", "Y":
			s.answer(m.Plan{Items: s.items}.Executable())
			s.phase = phaseExecuting
			s.progressPercent = 0
		case "n", "N", "esc":
			s.phase = phaseReview
		case "q":
			return s.quit()
		}

		return s, nil

	case phaseReview:
		switch msg.String() {
		case "q":
			return s.quit()
		case " ":
			return s.toggleCurrent(), nil
		case "a":
			return s.selectAll(true), nil
		case "n":
			return s.selectAll(false), nil
		case "enter":
			if len(m.Plan{Items: s.items}.Executable()) == 0 {
				s.notice = "Nothing selected to rename."

				return s, nil
			}

			s.notice = ""
			s.phase = phaseConfirm

			return s, nil
		}

	default:
		if msg.String() == "q" {
			return s.quit()
		}
	}

	return s.updateList(msg)
}

func (s sessionModel) updateList(msg tea.KeyMsg) (sessionModel, tea.Cmd) {
	var cmd tea.Cmd

	s.rows, cmd = s.rows.Update(msg)

	if s.rows.Index() != s.lastSelected {
		s.lastSelected = s.rows.Index()
		s.animOffset = 0
		s.delegate.offset = 0
		s.rows.SetDelegate(s.delegate)
	}

	return s, cmd
}

// quit leaves the program; a pending review is answered with nothing.
func (s sessionModel) quit() (sessionModel, tea.Cmd) {
	s.answer(nil)

	return s, tea.Quit
}

func (s *sessionModel) answer(items []m.PlanItem) {
	if s.reply == nil {
		return
	}

	s.reply <- items
	s.reply = nil
}

func (s sessionModel) toggleCurrent() sessionModel {
	row, ok := s.rows.SelectedItem().(planRow)
	if !ok {
		return s
	}

	for i := range s.items {
		if s.items[i].CurrentPath == row.item.CurrentPath {
			s.items[i].Selected = !s.items[i].Selected
			s.rows.SetItem(s.rows.Index(), planRow{item: s.items[i]})

			break
		}
	}

	return s
}

func (s sessionModel) selectAll(selected bool) sessionModel {
	for i := range s.items {
		s.items[i].Selected = selected
	}

	index := s.rows.Index()
	s = s.setPlanRows()
	s.rows.Select(index)

	return s
}

func (s sessionModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	title := titleStyle.Render("✂ keytrim " + s.modeTitle())

	sections := []string{title, s.renderSummary()}

	if s.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Padding(0, 2)
		sections = append(sections, errStyle.Render(s.err.Error()))
	}

	switch s.phase {
	case phaseBuilding, phaseExecuting:
		sections = append(sections, lipgloss.NewStyle().Padding(1, 2).Render(
			s.progressBar.ViewAs(clampFraction(s.progressPercent)),
		))
	case phasePlan:
		if s.err == nil && s.plan.Empty() {
			sections = append(sections, lipgloss.NewStyle().Padding(1, 2).Render(emptyPlanMessage(s.plan)))
		} else if s.err == nil {
			sections = append(sections, s.renderTable("Sel  Current Name → New Name"))
		}
	case phaseReview:
		sections = append(sections, s.renderTable("Sel  Current Name → New Name"))
	case phaseConfirm:
		promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Padding(1, 2)
		sections = append(sections, promptStyle.Render(fmt.Sprintf(
			"Proceed to rename %d files? (y/n)", len(m.Plan{Items: s.items}.Executable()),
		)))
	case phaseResult:
		sections = append(sections, s.renderTable("Status   Current Name → New Name"))
	case phaseReports:
		if s.err == nil && len(s.reports) == 0 {
			sections = append(sections, lipgloss.NewStyle().Padding(1, 2).Render("No reports found."))
		} else if s.err == nil {
			sections = append(sections, s.renderTable("ID        Started"))
		}
	}

	if s.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 2)
		sections = append(sections, noticeStyle.Render(s.notice))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(s.width)

	sections = append(sections, footerStyle.Render(s.footer()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s sessionModel) modeTitle() string {
	switch s.mode {
	case ModeApply:
		return "apply"
	case ModeWatch:
		return "watch"
	case ModeView:
		return "reports"
	default:
		return "preview"
	}
}

func (s sessionModel) renderSummary() string {
	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	switch s.phase {
	case phaseReports:
		return summaryStyle.Render(fmt.Sprintf("Reports: %s", accentStyle.Render(fmt.Sprintf("%d", len(s.reports)))))
	case phaseExecuting:
		return summaryStyle.Render("Renaming…")
	case phaseResult:
		return summaryStyle.Render(fmt.Sprintf(
			"Renamed: %s   Skipped: %s   Errors: %s",
			accentStyle.Render(fmt.Sprintf("%d", s.result.Succeeded)),
			accentStyle.Render(fmt.Sprintf("%d", s.result.Skipped)),
			accentStyle.Render(fmt.Sprintf("%d", s.result.Errored)),
		))
	case phaseBuilding:
		return summaryStyle.Render("Scanning…")
	default:
		summary := fmt.Sprintf(
			"Keyword: %s   Files: %s   Planned: %s   Selected: %s",
			accentStyle.Render(s.plan.Keyword),
			accentStyle.Render(fmt.Sprintf("%d", s.plan.TotalFiles)),
			accentStyle.Render(fmt.Sprintf("%d", len(s.items))),
			accentStyle.Render(fmt.Sprintf("%d", m.Plan{Items: s.items}.Selected())),
		)

		if s.mode == ModeWatch && !s.builtAt.IsZero() {
			summary += "   Updated: " + accentStyle.Render(s.builtAt.Format(time.TimeOnly))
		}

		return summaryStyle.Render(summary)
	}
}

func (s sessionModel) renderTable(header string) string {
	// title, summary, footer, borders and headers
	listHeight := s.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := s.width - 6
	if listWidth < 20 {
		listWidth = 74
	}

	s.rows.SetHeight(listHeight)
	s.rows.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render(header),
			s.rows.View(),
		),
	)
}

func (s sessionModel) footer() string {
	switch s.phase {
	case phaseReview:
		return "space toggle • a all • n none • enter apply • / filter • q quit"
	case phaseConfirm:
		return "y confirm • n back"
	case phaseExecuting:
		return "renaming…"
	default:
		return "↑/k up • ↓/j down • / filter • q quit"
	}
}
