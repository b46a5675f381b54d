package cmd

import (
	"fmt"
	"strings"

	"github.com/RafaelRangel0/Similar-Doctors/internal/adapters/web"
	"github.com/RafaelRangel0/Similar-Doctors/internal/domain/doctor"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// paint wraps s in an ANSI color when color output is on.
func paint(code, s string, on bool) string {
	if !on {
		return s
	}
	return code + s + colorReset
}

// formatDoctor renders one doctor as a single line:
//
//	#12  Ana Ruiz  Cardiology  @North  ★4.5
func formatDoctor(r doctor.Record, color bool) string {
	return fmt.Sprintf("  %s  %s  %s  %s  %s\n",
		paint(colorGray, fmt.Sprintf("#%d", r.ID), color),
		paint(colorCyan, r.Name, color),
		r.Specialty,
		paint(colorMagenta, "@"+r.Area, color),
		paint(colorGreen, fmt.Sprintf("★%g", r.ReviewScore), color))
}

// formatDoctors formats a search result for terminal display.
func formatDoctors(records []doctor.Record, color bool) string {
	var sb strings.Builder
	sb.WriteString(paint(colorBold, fmt.Sprintf("⚡ %d doctors", len(records)), color))
	sb.WriteString("\n")
	for _, r := range records {
		sb.WriteString(formatDoctor(r, color))
	}
	return sb.String()
}

// formatSimilar formats the doctors similar to target.
func formatSimilar(target doctor.Record, similar []doctor.Record, color bool) string {
	var sb strings.Builder
	sb.WriteString(paint(colorBold, fmt.Sprintf("⚡ %d similar to %s", len(similar), target.Name), color))
	sb.WriteString("\n")
	sb.WriteString(formatDoctor(target, color))
	if len(similar) > 0 {
		sb.WriteString("  ──\n")
	}
	for _, r := range similar {
		sb.WriteString(formatDoctor(r, color))
	}
	return sb.String()
}

// formatCheck summarizes a data file.
func formatCheck(path string, count int, facets doctor.Facets, color bool) string {
	var sb strings.Builder
	sb.WriteString(paint(colorBold, "⚡ data file ok", color))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  File:         %s\n", path))
	sb.WriteString(fmt.Sprintf("  Doctors:      %d\n", count))
	sb.WriteString(fmt.Sprintf("  Specialties:  %d\n", len(facets.Specialties)))
	sb.WriteString(fmt.Sprintf("  Areas:        %d\n", len(facets.Areas)))
	return sb.String()
}

// formatHealth formats a HealthResult for terminal display.
func formatHealth(h *web.HealthResult, color bool) string {
	var sb strings.Builder
	sb.WriteString(paint(colorBold, "⚡ similardocs server", color))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Status:  %s\n", paint(colorGreen, h.Status, color)))
	sb.WriteString(fmt.Sprintf("  Mode:    %s\n", h.Mode))
	sb.WriteString(fmt.Sprintf("  Data:    %s\n", h.Data))
	sb.WriteString(fmt.Sprintf("  Uptime:  %s\n", h.Uptime))
	return sb.String()
}
