// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"math"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

const barWidth = 30

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("f1: sobre │ ctrl+c: sair"))

	return appStyle.Render(b.String())
}

// progressBar renders ratio (clamped to [0, 1]) as a fixed-width bar.
func progressBar(ratio float64, width int) string {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	ratio = min(ratio, 1)
	filled := int(math.Round(ratio * float64(width)))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// percent formats ratio as a whole percentage.
func percent(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}

// num formats a quantity without decimals.
func num(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func renderStatus(errMsg, notice string) string {
	switch {
	case errMsg != "":
		return "\n" + errorStyle.Render("Erro: "+errMsg)
	case notice != "":
		return "\n" + noticeStyle.Render(notice)
	default:
		return ""
	}
}
