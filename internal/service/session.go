// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-calcufit/internal/crypto"
	"github.com/MKhiriev/go-calcufit/internal/logger"
	"github.com/MKhiriev/go-calcufit/internal/store"
	"github.com/MKhiriev/go-calcufit/internal/utils"
	"github.com/MKhiriev/go-calcufit/models"
)

// SessionState is the lifecycle state of a [Session].
type SessionState int

const (
	StateLoading SessionState = iota
	StateLoggedOut
	StateLoggedIn
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoggedOut:
		return "logged_out"
	case StateLoggedIn:
		return "logged_in"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// SignupRequest carries the raw signup form.
type SignupRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Session is the [SessionService] implementation. It is safe for use from
// the UI loop and from background commands.
type Session struct {
	mu sync.RWMutex

	store  store.RecordStore
	hasher crypto.PasswordHasher
	ids    utils.IDGenerator
	logger *logger.Logger

	booted  bool
	state   SessionState
	account models.Account
	view    models.View
}

// NewSession returns a session in the Loading state.
func NewSession(recordStore store.RecordStore, hasher crypto.PasswordHasher, ids utils.IDGenerator, logger *logger.Logger) *Session {
	return &Session{
		store:  recordStore,
		hasher: hasher,
		ids:    ids,
		logger: logger,
		state:  StateLoading,
	}
}

func (s *Session) Boot(ctx context.Context) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.booted {
		return s.state
	}
	s.booted = true

	if account, ok := s.store.ActiveAccount(ctx); ok {
		s.enter(account)
		s.logger.Info().Str("func", "*Session.Boot").Str("account_id", account.ID).Msg("session restored")
		return s.state
	}

	s.leave()
	return s.state
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Account() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateLoggedIn {
		return models.Account{}, false
	}
	return s.account.Clone(), true
}

func (s *Session) View() models.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Session) Login(ctx context.Context, email, password string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireState(StateLoggedOut); err != nil {
		return models.Account{}, err
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return models.Account{}, ErrEmptyField
	}

	for _, account := range s.store.ListAccounts(ctx) {
		if !account.EmailMatches(email) {
			continue
		}
		if !s.hasher.Verify(account.Credential, password) {
			break
		}

		if err := s.store.SetActiveAccount(ctx, account); err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		s.enter(account)
		s.logger.Info().Str("func", "*Session.Login").Str("account_id", account.ID).Msg("logged in")
		return account.Clone(), nil
	}

	s.logger.Debug().Str("func", "*Session.Login").Msg("invalid credentials")
	return models.Account{}, ErrInvalidCredentials
}

func (s *Session) Signup(ctx context.Context, req SignupRequest) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireState(StateLoggedOut); err != nil {
		return models.Account{}, err
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return models.Account{}, ErrEmptyField
	}
	if req.Password != req.ConfirmPassword {
		return models.Account{}, ErrPasswordMismatch
	}

	accounts := s.store.ListAccounts(ctx)
	for _, existing := range accounts {
		if existing.EmailMatches(email) {
			return models.Account{}, ErrEmailAlreadyExists
		}
	}

	cred, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		ID:         s.ids.Generate(),
		Name:       name,
		Email:      models.NormalizeEmail(email),
		Credential: cred,
		Settings:   models.DefaultGoals(),
	}.Clone()

	if err = s.store.ReplaceAccounts(ctx, append(accounts, account)); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err = s.store.SetActiveAccount(ctx, account); err != nil {
		// the account is already stored; only restoring it at the next
		// start is lost
		s.logger.Warn().Err(err).
			Str("func", "*Session.Signup").
			Str("account_id", account.ID).
			Msg("cannot persist active account pointer")
	}

	s.enter(account)
	s.logger.Info().Str("func", "*Session.Signup").Str("account_id", account.ID).Msg("account created")
	return account.Clone(), nil
}

func (s *Session) UpdateAccount(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireState(StateLoggedIn); err != nil {
		return err
	}
	if account.ID != s.account.ID {
		return ErrAccountMismatch
	}

	next := account.Clone()
	if err := s.store.UpsertAndSyncActive(ctx, next); err != nil {
		s.logger.Err(err).Str("func", "*Session.UpdateAccount").Str("account_id", next.ID).Msg("update not persisted, keeping previous state")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.account = next
	return nil
}

func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireState(StateLoggedIn); err != nil {
		return err
	}
	if err := s.store.ClearActiveAccount(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.logger.Info().Str("func", "*Session.Logout").Str("account_id", s.account.ID).Msg("logged out")
	s.leave()
	return nil
}

func (s *Session) Navigate(view models.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !view.Valid() {
		return ErrInvalidView
	}

	switch s.state {
	case StateLoggedIn:
		if !view.RequiresAccount() {
			return ErrAlreadyLoggedIn
		}
	case StateLoggedOut:
		if view.RequiresAccount() {
			return ErrNotLoggedIn
		}
	default:
		return ErrNotBooted
	}

	s.view = view
	return nil
}

func (s *Session) requireState(want SessionState) error {
	switch {
	case s.state == want:
		return nil
	case s.state == StateLoading:
		return ErrNotBooted
	case s.state == StateLoggedIn:
		return ErrAlreadyLoggedIn
	default:
		return ErrNotLoggedIn
	}
}

func (s *Session) enter(account models.Account) {
	s.state = StateLoggedIn
	s.account = account.Clone()
	s.view = models.ViewHome
}

func (s *Session) leave() {
	s.state = StateLoggedOut
	s.account = models.Account{}
	s.view = models.ViewLogin
}
