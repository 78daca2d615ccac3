// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/app"
	"github.com/MKhiriev/go-calcufit/internal/service"
)

const (
	profileName = iota
	profileCalories
	profileWater
)

// ProfileModel edits the display name and daily goals.
type ProfileModel struct {
	ctx     context.Context
	session service.SessionService
	tracker service.TrackerService

	form   form
	email  string
	errMsg string
	notice string
}

// NewProfileModel creates a [ProfileModel]; values are loaded on Enter.
func NewProfileModel(ctx context.Context, session service.SessionService, tracker service.TrackerService) *ProfileModel {
	return &ProfileModel{
		ctx:     ctx,
		session: session,
		tracker: tracker,
		form: newForm(
			newInput("Seu nome", 80),
			newInput("2000", 6),
			newInput("2000", 6),
		),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ProfileModel) Enter() tea.Cmd {
	m.errMsg = ""
	m.notice = ""

	account, ok := m.session.Account()
	if !ok {
		m.errMsg = app.MsgNotLoggedIn
		return nil
	}

	goals := account.Goals()
	m.email = account.Email
	m.form.set(profileName, account.Name)
	m.form.set(profileCalories, strconv.Itoa(goals.CalorieGoal))
	m.form.set(profileWater, strconv.Itoa(goals.WaterGoal))
	m.form.focusAt(profileName)
	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			m.notice = ""
			return m, nil
		}
		// show the normalized goals
		cmd := m.Enter()
		m.notice = msg.notice
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.cmdSave(service.ProfileForm{
				Name:        m.form.value(profileName),
				CalorieGoal: m.form.value(profileCalories),
				WaterGoal:   m.form.value(profileWater),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	b.WriteString("E-mail          │ " + m.email + "\n")
	b.WriteString("Nome            │ [" + m.form.inputs[profileName].View() + "]\n")
	b.WriteString("Meta de calorias│ [" + m.form.inputs[profileCalories].View() + "] kcal\n")
	b.WriteString("Meta de água    │ [" + m.form.inputs[profileWater].View() + "] ml\n")
	b.WriteString("\n[Salvar alterações]")
	b.WriteString(renderStatus(m.errMsg, m.notice))

	return renderPage("PERFIL", b.String(), "tab: próximo campo │ enter: salvar")
}

func (m *ProfileModel) cmdSave(f service.ProfileForm) tea.Cmd {
	ctx := m.ctx
	tracker := m.tracker
	return func() tea.Msg {
		if err := tracker.SaveProfile(ctx, f); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{notice: app.MsgProfileSaved}
	}
}
