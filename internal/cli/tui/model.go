// Package tui renders the banner workflow as a terminal dashboard: the
// status summary on top, the banner table below.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"herobanner/contexts/banner-program/banner-registry/application"
	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	"herobanner/contexts/banner-program/banner-registry/ports"
)

func Run(ctx context.Context, service application.Service) error {
	model := NewModel(ctx, service)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type loadedMsg struct {
	banners []entities.BannerRecord
	summary ports.Summary
}

type loadFailedMsg struct {
	err error
}

type Model struct {
	ctx     context.Context
	service application.Service
	table   table.Model
	summary ports.Summary
	err     error
	width   int
}

func NewModel(ctx context.Context, service application.Service) Model {
	columns := []table.Column{
		{Title: "Hero", Width: 24},
		{Title: "Sponsor", Width: 22},
		{Title: "Status", Width: 34},
		{Title: "Paid", Width: 4},
		{Title: "Pole", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	return Model{ctx: ctx, service: service, table: t}
}

func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	banners, err := m.service.ListBanners(m.ctx, "")
	if err != nil {
		return loadFailedMsg{err: err}
	}
	summary, err := m.service.Summary(m.ctx)
	if err != nil {
		return loadFailedMsg{err: err}
	}
	return loadedMsg{banners: banners, summary: summary}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.load
		}

	case loadedMsg:
		m.summary = msg.summary
		m.err = nil
		rows := make([]table.Row, 0, len(msg.banners))
		for _, banner := range msg.banners {
			paid := "no"
			if banner.PaymentVerified {
				paid = "yes"
			}
			rows = append(rows, table.Row{
				banner.HeroName,
				banner.SponsorName,
				string(banner.Status()),
				paid,
				banner.PoleLocation,
			})
		}
		m.table.SetRows(rows)
		return m, nil

	case loadFailedMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hometown Hero Banners"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("load failed: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(summaryStyle.Render(m.summaryView()))
		b.WriteString("\n")
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("r refresh · q quit"))
	return b.String()
}

func (m Model) summaryView() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Total: %d", m.summary.Total))
	for _, item := range m.summary.ByStatus {
		parts = append(parts, fmt.Sprintf("%s: %d", item.Status, item.Count))
	}
	return strings.Join(parts, "  ·  ")
}
