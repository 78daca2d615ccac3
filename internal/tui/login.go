// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/app"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/models"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on
// submission. The resulting [authDoneMsg] is also seen by [RootModel], which
// switches to the home page on success.
type LoginModel struct {
	ctx     context.Context
	session service.SessionService

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email field focused.
func NewLoginModel(ctx context.Context, session service.SessionService) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form:    newForm(newInput("email@exemplo.com", 254), newPasswordInput("senha")),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Enter() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg] clears submitting state; on error, populates errMsg.
//   - ctrl+n navigates to the signup page.
//   - tab / shift+tab move focus between inputs.
//   - enter validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = loginMessage(result.err)
			return m, nil
		}
		m.form.reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.signup):
			return m, func() tea.Msg { return NavigateTo{View: models.ViewSignup} }
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
			email := strings.TrimSpace(m.form.value(loginEmail))
			pass := m.form.value(loginPassword)
			if email == "" || pass == "" {
				m.errMsg = app.MsgFillEmailPassword
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Acompanhe calorias e hidratação.\n\n")
	b.WriteString("E-mail │ [")
	b.WriteString(m.form.inputs[loginEmail].View())
	b.WriteString("]\n")
	b.WriteString("Senha  │ [")
	b.WriteString(m.form.inputs[loginPassword].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Entrando...]")
	} else {
		b.WriteString("\n[Entrar]")
	}
	b.WriteString(renderStatus(m.errMsg, ""))

	return renderPage("CALCUFIT · ENTRAR", b.String(), "tab: próximo campo │ enter: entrar │ ctrl+n: criar conta")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		_, err := session.Login(ctx, email, pass)
		return authDoneMsg{err: err}
	}
}

func loginMessage(err error) string {
	if errors.Is(err, service.ErrEmptyField) {
		return app.MsgFillEmailPassword
	}
	return app.UserMessage(err)
}
