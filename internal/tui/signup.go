// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/app"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/models"
)

const (
	signupName = iota
	signupEmail
	signupPassword
	signupConfirm
)

// SignupModel is the account creation screen. Validation happens in the
// session service; the page only displays its verdict.
type SignupModel struct {
	ctx     context.Context
	session service.SessionService

	form       form
	submitting bool
	errMsg     string
}

// NewSignupModel creates a [SignupModel] with the name field focused.
func NewSignupModel(ctx context.Context, session service.SessionService) *SignupModel {
	return &SignupModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			newInput("Seu nome", 80),
			newInput("email@exemplo.com", 254),
			newPasswordInput("senha"),
			newPasswordInput("confirme a senha"),
		),
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Enter() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = app.UserMessage(result.err)
			return m, nil
		}
		m.form.reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{View: models.ViewLogin} }
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(service.SignupRequest{
				Name:            m.form.value(signupName),
				Email:           m.form.value(signupEmail),
				Password:        m.form.value(signupPassword),
				ConfirmPassword: m.form.value(signupConfirm),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *SignupModel) View() string {
	labels := []string{"Nome   ", "E-mail ", "Senha  ", "Repetir"}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Criando conta...]")
	} else {
		b.WriteString("\n[Criar conta]")
	}
	b.WriteString(renderStatus(m.errMsg, ""))

	return renderPage("CALCUFIT · CRIAR CONTA", b.String(), "esc: voltar │ tab: próximo campo │ enter: criar")
}

func (m *SignupModel) cmdSignup(req service.SignupRequest) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		_, err := session.Signup(ctx, req)
		return authDoneMsg{err: err}
	}
}
