// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-calcufit/models"
)

// renderBuildInfoWindow shows build metadata and whether AI estimation is
// configured.
func renderBuildInfoWindow(info models.AppBuildInfo, estimatorEnabled bool) string {
	estimator := "desativada (defina ESTIMATOR_API_KEY)"
	if estimatorEnabled {
		estimator = "ativada"
	}

	rows := [][2]string{
		{"Aplicativo", "calcufit"},
		{"Versão", valueOrNA(info.Version)},
		{"Data", valueOrNA(info.Date)},
		{"Commit", valueOrNA(info.Commit)},
		{"Análise com IA", estimator},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-15s %s", row[0]+":", row[1]))
	}

	return renderPage("SOBRE", overlayBoxStyle.Render(strings.Join(lines, "\n")), "esc: voltar")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
