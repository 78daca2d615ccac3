// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/app"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/internal/stats"
	"github.com/MKhiriev/go-calcufit/models"
)

var macroLabels = map[string]string{
	stats.MacroCarbs:   "Carboidratos",
	stats.MacroProtein: "Proteínas",
	stats.MacroFat:     "Gorduras",
	stats.MacroEmpty:   "Sem macros registrados",
}

// HomeModel shows the daily summary of the active account.
type HomeModel struct {
	session service.SessionService
	reports service.ReportService

	name    string
	summary models.DailySummary
	errMsg  string
}

// NewHomeModel creates an empty [HomeModel]; data is loaded on Enter.
func NewHomeModel(session service.SessionService, reports service.ReportService) *HomeModel {
	return &HomeModel{session: session, reports: reports}
}

func (m *HomeModel) Init() tea.Cmd { return nil }

func (m *HomeModel) Enter() tea.Cmd {
	m.errMsg = ""
	if account, ok := m.session.Account(); ok {
		m.name = account.Name
	}

	summary, err := m.reports.Today()
	if err != nil {
		m.errMsg = app.UserMessage(err)
		return nil
	}
	m.summary = summary
	return nil
}

func (m *HomeModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *HomeModel) View() string {
	s := m.summary

	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s!\n", m.name)
	if s.Day != "" {
		fmt.Fprintf(&b, "Resumo de %s\n\n", s.Day)
	} else {
		b.WriteString("Resumo de todos os registros\n\n")
	}

	fmt.Fprintf(&b, "Calorias  %s / %d kcal\n", num(s.Totals.Kcal), s.Goals.CalorieGoal)
	fmt.Fprintf(&b, "%s %s\n\n", progressBar(s.KcalProgress, barWidth), percent(s.KcalProgress))
	fmt.Fprintf(&b, "Água      %s / %d ml\n", num(s.Totals.WaterML), s.Goals.WaterGoal)
	fmt.Fprintf(&b, "%s %s\n\n", progressBar(s.WaterProgress, barWidth), percent(s.WaterProgress))

	b.WriteString(renderMacros(s.Macros))
	b.WriteString("\nDica: beba um copo de água antes de cada refeição para melhorar a digestão.")
	b.WriteString(renderStatus(m.errMsg, ""))

	return renderPage("INÍCIO", b.String(), "")
}

// renderMacros lists every slice with its share of the total grams.
func renderMacros(slices []models.MacroSlice) string {
	var b strings.Builder
	b.WriteString("Macronutrientes\n")

	if len(slices) == 1 && slices[0].Placeholder {
		b.WriteString("  ")
		b.WriteString(macroLabels[stats.MacroEmpty])
		b.WriteString("\n")
		return b.String()
	}

	var total float64
	for _, s := range slices {
		total += s.Value
	}
	for _, s := range slices {
		share := 0.0
		if total > 0 {
			share = s.Value / total
		}
		fmt.Fprintf(&b, "  %-13s %5sg %s %s\n", macroLabels[s.Name], num(s.Value), progressBar(share, 10), percent(share))
	}
	return b.String()
}
