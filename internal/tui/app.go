// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-calcufit/internal/app"
	"github.com/MKhiriev/go-calcufit/internal/service"
	"github.com/MKhiriev/go-calcufit/models"
)

// page is a screen bound to one view.
type page interface {
	tea.Model

	// Enter is called every time the page becomes active. It resets
	// transient state and reloads data from the services.
	Enter() tea.Cmd
}

var navTabs = []struct {
	view  models.View
	label string
	key   string
}{
	{models.ViewHome, "Início", "f2"},
	{models.ViewTracker, "Registrar", "f3"},
	{models.ViewReports, "Relatórios", "f4"},
	{models.ViewProfile, "Perfil", "f5"},
}

// RootModel is a TUI router:
// 1) keeps the page of the session's active view
// 2) handles global keys (quit, build info, view switching, logout)
// 3) handles NavigateTo and auth/logout results
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices

	pages     map[models.View]page
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	errMsg        string
}

// NewRootModel builds every page and opens the session's active view.
func NewRootModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:      ctx,
		services: services,
		pages: map[models.View]page{
			models.ViewLogin:   NewLoginModel(ctx, services.Session),
			models.ViewSignup:  NewSignupModel(ctx, services.Session),
			models.ViewHome:    NewHomeModel(services.Session, services.Reports),
			models.ViewTracker: NewTrackerModel(ctx, services.Tracker, services.Estimate),
			models.ViewReports: NewReportsModel(services.Reports),
			models.ViewProfile: NewProfileModel(ctx, services.Session, services.Tracker),
		},
		buildInfo: buildInfo,
	}
}

func (r RootModel) current() page {
	return r.pages[r.services.Session.View()]
}

func (r RootModel) Init() tea.Cmd {
	if p := r.current(); p != nil {
		return p.Enter()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if r.services.Session.State() == service.StateLoggedIn {
			switch {
			case key.Matches(keyMsg, keys.logout):
				return r, r.cmdLogout()
			case key.Matches(keyMsg, keys.home):
				return r.navigate(models.ViewHome)
			case key.Matches(keyMsg, keys.tracker):
				return r.navigate(models.ViewTracker)
			case key.Matches(keyMsg, keys.reports):
				return r.navigate(models.ViewReports)
			case key.Matches(keyMsg, keys.profile):
				return r.navigate(models.ViewProfile)
			}
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.View)
	case authDoneMsg:
		if msg.err == nil {
			return r.enterCurrent()
		}
	case logoutDoneMsg:
		if msg.err != nil {
			r.errMsg = app.UserMessage(msg.err)
			return r, nil
		}
		for _, v := range []models.View{models.ViewLogin, models.ViewSignup} {
			r.pages[v] = r.rebuild(v)
		}
		return r.enterCurrent()
	}

	p := r.current()
	if p == nil {
		return r, nil
	}
	updated, cmd := p.Update(msg)
	if next, ok := updated.(page); ok {
		r.pages[r.services.Session.View()] = next
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.services.Estimate != nil && r.services.Estimate.Enabled())
	}

	p := r.current()
	if p == nil {
		return renderPage("calcufit", "", "")
	}

	if r.services.Session.State() != service.StateLoggedIn {
		return p.View()
	}

	var b strings.Builder
	b.WriteString(r.renderNav())
	b.WriteString("\n")
	if r.errMsg != "" {
		b.WriteString(errorStyle.Render("Erro: " + r.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(p.View())
	return b.String()
}

func (r RootModel) navigate(v models.View) (tea.Model, tea.Cmd) {
	if err := r.services.Session.Navigate(v); err != nil {
		return r, nil
	}
	return r.enterCurrent()
}

func (r RootModel) enterCurrent() (tea.Model, tea.Cmd) {
	r.errMsg = ""
	r.showBuildInfo = false
	if p := r.current(); p != nil {
		return r, p.Enter()
	}
	return r, nil
}

func (r RootModel) rebuild(v models.View) page {
	switch v {
	case models.ViewSignup:
		return NewSignupModel(r.ctx, r.services.Session)
	default:
		return NewLoginModel(r.ctx, r.services.Session)
	}
}

func (r RootModel) renderNav() string {
	active := r.services.Session.View()
	tabs := make([]string, 0, len(navTabs)+1)
	for _, t := range navTabs {
		label := t.key + " " + t.label
		if t.view == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	tabs = append(tabs, tabStyle.Render("f10 Sair da conta"))
	return "  " + strings.Join(tabs, "  │  ")
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	session := r.services.Session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}
