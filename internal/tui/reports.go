// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/app"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/models"
)

type reportTab int

const (
	tabKcal reportTab = iota
	tabWater
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ReportsModel shows the rolling 7-day series with a kcal / water tab.
type ReportsModel struct {
	reports service.ReportService

	week   models.WeeklyReport
	tab    reportTab
	errMsg string
	notice string
}

// NewReportsModel creates an empty [ReportsModel]; data is loaded on Enter.
func NewReportsModel(reports service.ReportService) *ReportsModel {
	return &ReportsModel{reports: reports}
}

func (m *ReportsModel) Init() tea.Cmd { return nil }

func (m *ReportsModel) Enter() tea.Cmd {
	m.errMsg = ""
	m.notice = ""

	week, err := m.reports.Week()
	if err != nil {
		m.errMsg = app.UserMessage(err)
		return nil
	}
	m.week = week
	return nil
}

func (m *ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgCopyFailed
			return m, nil
		}
		m.notice = app.MsgSummaryCopied
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.switchTab):
			m.tab = (m.tab + 1) % 2
			return m, nil
		case key.Matches(msg, keys.copy):
			text := weeklySummaryText(m.week)
			return m, func() tea.Msg { return copiedMsg{err: writeClipboard(text)} }
		}
	}
	return m, nil
}

func (m *ReportsModel) View() string {
	var b strings.Builder

	kcalTab, waterTab := activeTabStyle.Render("Calorias"), tabStyle.Render("Água")
	if m.tab == tabWater {
		kcalTab, waterTab = tabStyle.Render("Calorias"), activeTabStyle.Render("Água")
	}
	b.WriteString(kcalTab + "  │  " + waterTab + "\n\n")

	for _, d := range m.week.Days {
		value, goal, unit := d.Kcal, float64(d.GoalKcal), "kcal"
		if m.tab == tabWater {
			value, goal, unit = d.WaterML, float64(d.GoalWater), "ml"
		}
		ratio := 0.0
		if goal > 0 {
			ratio = value / goal
		}
		fmt.Fprintf(&b, "%-4s %s %s %6s / %d %s\n", d.Label, d.Date, progressBar(ratio, barWidth/2), num(value), int(goal), unit)
	}

	b.WriteString("\n")
	if m.tab == tabWater {
		fmt.Fprintf(&b, "Média diária: %d ml\n", m.week.AvgWater)
	} else {
		fmt.Fprintf(&b, "Média diária: %d kcal\n", m.week.AvgKcal)
		fmt.Fprintf(&b, "Meta de calorias atingida em %d de %d dias\n", m.week.DaysKcalGoalMet, len(m.week.Days))
	}
	b.WriteString(renderStatus(m.errMsg, m.notice))

	return renderPage("RELATÓRIOS · ÚLTIMOS 7 DIAS", b.String(), "tab: calorias/água │ c: copiar resumo")
}

// weeklySummaryText renders the report as plain text for the clipboard.
func weeklySummaryText(w models.WeeklyReport) string {
	if len(w.Days) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resumo semanal (%s a %s)\n", w.Days[0].Date, w.Days[len(w.Days)-1].Date)
	for _, d := range w.Days {
		fmt.Fprintf(&b, "%s %s: %s kcal, %s ml\n", d.Label, d.Date, num(d.Kcal), num(d.WaterML))
	}
	fmt.Fprintf(&b, "Média: %d kcal/dia, %d ml/dia\n", w.AvgKcal, w.AvgWater)
	fmt.Fprintf(&b, "Meta de calorias atingida em %d de %d dias", w.DaysKcalGoalMet, len(w.Days))
	return b.String()
}
