// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/app"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/models"
)

const (
	trackerName = iota
	trackerKcal
	trackerCarbs
	trackerProtein
	trackerFat
	trackerImage
	trackerWater
)

const foodListRows = 8

var errImageUnreadable = errors.New("image unreadable")

// TrackerModel is the intake screen: the food form (optionally pre-filled
// by the AI estimator), the water form and the food log newest first.
type TrackerModel struct {
	ctx      context.Context
	tracker  service.TrackerService
	estimate service.EstimateService

	form       form
	food       []models.FoodRecord
	selected   int
	estimating bool
	errMsg     string
	notice     string
}

// NewTrackerModel creates a [TrackerModel] with the food name focused.
func NewTrackerModel(ctx context.Context, tracker service.TrackerService, estimate service.EstimateService) *TrackerModel {
	return &TrackerModel{
		ctx:      ctx,
		tracker:  tracker,
		estimate: estimate,
		form: newForm(
			newInput("Descreva o alimento", 120),
			newInput("kcal", 8),
			newInput("g", 8),
			newInput("g", 8),
			newInput("g", 8),
			newInput("caminho da foto (opcional)", 512),
			newInput("ml", 6),
		),
	}
}

func (m *TrackerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TrackerModel) Enter() tea.Cmd {
	m.errMsg = ""
	m.notice = ""
	m.reload()
	return textinput.Blink
}

func (m *TrackerModel) reload() {
	food, err := m.tracker.FoodLog()
	if err != nil {
		m.errMsg = app.UserMessage(err)
		return
	}
	m.food = food
	if m.selected >= len(m.food) {
		m.selected = max(len(m.food)-1, 0)
	}
}

func (m *TrackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.errMsg = m.messageFor(msg.err)
			m.notice = ""
			return m, nil
		}
		for _, i := range msg.clear {
			m.form.inputs[i].Reset()
		}
		m.errMsg = ""
		m.notice = msg.notice
		m.reload()
		return m, nil

	case estimateDoneMsg:
		m.estimating = false
		if msg.err != nil {
			m.errMsg = m.messageFor(msg.err)
			return m, nil
		}
		m.form.set(trackerName, msg.form.Name)
		m.form.set(trackerKcal, msg.form.Kcal)
		m.form.set(trackerCarbs, msg.form.Carbs)
		m.form.set(trackerProtein, msg.form.Protein)
		m.form.set(trackerFat, msg.form.Fat)
		m.errMsg = ""
		m.notice = "Valores estimados. Revise e adicione."
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, keys.down):
			if m.selected < len(m.food)-1 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, keys.delete):
			if len(m.food) == 0 {
				return m, nil
			}
			return m, m.cmdRemoveFood(m.food[m.selected].ID)
		case key.Matches(msg, keys.estimate):
			return m, m.startEstimate()
		case key.Matches(msg, keys.enter):
			if m.form.focus == trackerWater {
				return m, m.cmdAddWater(m.form.value(trackerWater))
			}
			return m, m.cmdAddFood(service.FoodForm{
				Name:    m.form.value(trackerName),
				Kcal:    m.form.value(trackerKcal),
				Carbs:   m.form.value(trackerCarbs),
				Protein: m.form.value(trackerProtein),
				Fat:     m.form.value(trackerFat),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *TrackerModel) View() string {
	in := m.form.inputs

	var b strings.Builder
	b.WriteString(titleStyle.Render("Alimento"))
	b.WriteString("\n")
	b.WriteString("Nome     │ [" + in[trackerName].View() + "]\n")
	b.WriteString("Calorias │ [" + in[trackerKcal].View() + "]\n")
	b.WriteString("Carbs    │ [" + in[trackerCarbs].View() + "]  ")
	b.WriteString("Prot [" + in[trackerProtein].View() + "]  ")
	b.WriteString("Gord [" + in[trackerFat].View() + "]\n")
	b.WriteString("Foto     │ [" + in[trackerImage].View() + "]\n")
	switch {
	case m.estimating:
		b.WriteString(helpStyle.Render("Analisando com IA..."))
	case !m.estimate.Enabled():
		b.WriteString(helpStyle.Render("Análise com IA desativada"))
	default:
		b.WriteString(helpStyle.Render("ctrl+e: analisar com IA"))
	}
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Água"))
	b.WriteString("\n")
	b.WriteString("Quantidade │ [" + in[trackerWater].View() + "] ml\n\n")

	b.WriteString(titleStyle.Render("Registros de hoje e anteriores"))
	b.WriteString("\n")
	b.WriteString(m.renderFoodList())
	b.WriteString(renderStatus(m.errMsg, m.notice))

	return renderPage("REGISTRAR", b.String(),
		"tab: próximo campo │ enter: adicionar │ ↑/↓: selecionar │ ctrl+d: remover")
}

func (m *TrackerModel) renderFoodList() string {
	if len(m.food) == 0 {
		return "Nenhum alimento registrado.\n"
	}

	start := 0
	if m.selected >= foodListRows {
		start = m.selected - foodListRows + 1
	}
	end := min(start+foodListRows, len(m.food))

	var b strings.Builder
	for i := start; i < end; i++ {
		f := m.food[i]
		line := fmt.Sprintf("%-24s %5s kcal  C: %sg  P: %sg  G: %sg  %s",
			fitText(f.Name, 24), num(f.Kcal), num(f.Carbs), num(f.Protein), num(f.Fat),
			f.Date.Local().Format("02/01 15:04"))
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.food) > foodListRows {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d de %d", m.selected+1, len(m.food))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *TrackerModel) messageFor(err error) string {
	switch {
	case errors.Is(err, errImageUnreadable):
		return app.MsgImageUnreadable
	case errors.Is(err, service.ErrEmptyField) && m.form.focus != trackerWater:
		return app.MsgFillNameKcal
	default:
		return app.UserMessage(err)
	}
}

func (m *TrackerModel) startEstimate() tea.Cmd {
	if m.estimating {
		m.errMsg = app.MsgEstimateBusy
		return nil
	}
	if !m.estimate.Enabled() {
		m.errMsg = app.MsgEstimateDisabled
		return nil
	}

	description := strings.TrimSpace(m.form.value(trackerName))
	imagePath := strings.TrimSpace(m.form.value(trackerImage))
	if description == "" && imagePath == "" {
		m.errMsg = app.MsgDescribeOrPhoto
		return nil
	}

	m.estimating = true
	m.errMsg = ""
	m.notice = ""

	ctx := m.ctx
	estimate := m.estimate
	return func() tea.Msg {
		img, err := loadImage(imagePath)
		if err != nil {
			return estimateDoneMsg{err: fmt.Errorf("%w: %v", errImageUnreadable, err)}
		}
		form, err := estimate.Estimate(ctx, models.EstimateRequest{Description: description, Image: img})
		return estimateDoneMsg{form: form, err: err}
	}
}

func (m *TrackerModel) cmdAddFood(f service.FoodForm) tea.Cmd {
	ctx := m.ctx
	tracker := m.tracker
	return func() tea.Msg {
		rec, err := tracker.AddFood(ctx, f)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{
			notice: fmt.Sprintf("%s adicionado (%s kcal).", rec.Name, num(rec.Kcal)),
			clear:  []int{trackerName, trackerKcal, trackerCarbs, trackerProtein, trackerFat, trackerImage},
		}
	}
}

func (m *TrackerModel) cmdAddWater(ml string) tea.Cmd {
	ctx := m.ctx
	tracker := m.tracker
	return func() tea.Msg {
		rec, err := tracker.AddWater(ctx, ml)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{
			notice: fmt.Sprintf("%s ml de água registrados.", num(rec.ML)),
			clear:  []int{trackerWater},
		}
	}
}

func (m *TrackerModel) cmdRemoveFood(id string) tea.Cmd {
	ctx := m.ctx
	tracker := m.tracker
	return func() tea.Msg {
		if err := tracker.RemoveFood(ctx, id); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{notice: "Alimento removido."}
	}
}
