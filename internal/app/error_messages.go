// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the calcufit
// screens.
//
// All Msg* constants are short Portuguese messages shown to the user.
// UserMessage maps service and adapter errors to one of them so that the
// screens never print raw error strings.
package app

import (
	"errors"

	"github.com/MKhiriev/go-calcufit/internal/adapter"
	"github.com/MKhiriev/go-calcufit/internal/service"
)

const (
	// MsgFillEmailPassword is shown when login is submitted with an empty
	// email or password.
	MsgFillEmailPassword = "Preencha e-mail e senha."

	// MsgInvalidCredentials is shown when no account matches the email and
	// password.
	MsgInvalidCredentials = "E-mail ou senha inválidos."

	// MsgFillAllFields is shown when a required form field is empty.
	MsgFillAllFields = "Preencha todos os campos."

	// MsgPasswordMismatch is shown when the signup password and confirmation
	// differ.
	MsgPasswordMismatch = "As senhas não coincidem."

	// MsgEmailAlreadyExists is shown when signing up with a registered email.
	MsgEmailAlreadyExists = "E-mail já cadastrado."

	MsgFillNameKcal     = "Preencha nome e calorias."
	MsgInvalidFood      = "Calorias devem ser um número maior ou igual a zero."
	MsgInvalidWater     = "Informe uma quantidade de água maior que zero."
	MsgProfileSaved     = "Perfil salvo com sucesso!"
	MsgSummaryCopied    = "Resumo copiado para a área de transferência."
	MsgCopyFailed       = "Não foi possível copiar o resumo."
	MsgStorageFailed    = "Não foi possível salvar. Tente novamente."
	MsgNotLoggedIn      = "Sessão encerrada. Entre novamente."
	MsgUnexpectedError  = "Ocorreu um erro inesperado."
	MsgDescribeOrPhoto  = "Por favor, descreva o alimento ou envie uma foto para análise."
	MsgEstimateFailed   = "Não foi possível analisar o alimento. Tente novamente ou preencha manualmente."
	MsgEstimateBusy     = "Uma análise já está em andamento."
	MsgEstimateDisabled = "Análise com IA indisponível: configure a chave da API."
	MsgImageUnreadable  = "Não foi possível ler a imagem."
)

// UserMessage returns the message to show for err. Unknown errors map to
// MsgUnexpectedError; nil maps to "".
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, service.ErrEmptyField):
		return MsgFillAllFields
	case errors.Is(err, service.ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return MsgEmailAlreadyExists
	case errors.Is(err, service.ErrInvalidFood):
		return MsgInvalidFood
	case errors.Is(err, service.ErrInvalidWater):
		return MsgInvalidWater
	case errors.Is(err, service.ErrStorage):
		return MsgStorageFailed
	case errors.Is(err, service.ErrNotLoggedIn):
		return MsgNotLoggedIn
	case errors.Is(err, service.ErrNothingToEstimate):
		return MsgDescribeOrPhoto
	case errors.Is(err, service.ErrEstimateInProgress):
		return MsgEstimateBusy
	case errors.Is(err, adapter.ErrEstimatorDisabled):
		return MsgEstimateDisabled
	case errors.Is(err, service.ErrEstimateFailed):
		return MsgEstimateFailed
	default:
		return MsgUnexpectedError
	}
}
