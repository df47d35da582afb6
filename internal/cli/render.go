// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-media-mirror/internal/service"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderServers(servers []models.ServerInfo) string {
	if len(servers) == 0 {
		return helpStyle.Render("no media servers online")
	}

	t := newTable("ID", "NAME", "PATH", "TRACKED")
	for _, s := range servers {
		t.Row(s.ID, s.Name, s.Handle.Path, yesNo(s.Tracked))
	}
	return t.String()
}

func renderTracked(servers []models.TrackedServer) string {
	if len(servers) == 0 {
		return helpStyle.Render("no tracked servers")
	}

	t := newTable("ID", "LAST UPDATE", "RESET TOKEN", "TRACKABLE")
	for _, s := range servers {
		t.Row(s.ServerID, updateID(s.LastUpdateID), s.ResetToken, yesNo(s.Trackable))
	}
	return t.String()
}

func renderTrackedServer(title string, s models.TrackedServer) string {
	return titleStyle.Render(title) + "\n" + renderTracked([]models.TrackedServer{s})
}

func renderReport(report models.SyncReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sync pass started " + report.StartedAt.Format("2006-01-02 15:04:05") +
		", took " + report.Duration.String()))
	b.WriteString("\n")

	if len(report.Results) == 0 {
		b.WriteString(helpStyle.Render("no tracked servers"))
		return b.String()
	}

	t := newTable("ID", "MODE", "FROM", "TO", "CONTAINERS", "ADDED", "REMOVED", "UPDATED", "STATUS")
	for _, r := range report.Results {
		t.Row(
			r.ServerID,
			r.Mode.String(),
			updateID(r.From),
			updateID(r.To),
			strconv.Itoa(r.Containers),
			strconv.Itoa(r.Added),
			strconv.Itoa(r.Removed),
			strconv.Itoa(r.Updated),
			resultStatus(r),
		)
	}
	b.WriteString(t.String())
	return b.String()
}

func renderError(err error) string {
	out := errorStyle.Render("error: " + err.Error())

	var unsupported *service.UnsupportedServerError
	switch {
	case errors.As(err, &unsupported):
		out += "\n" + helpStyle.Render("the server cannot report changes and will not be tracked")
	case errors.Is(err, service.ErrTransport):
		out += "\n" + helpStyle.Render("check that the media-server bridge is running")
	case errors.Is(err, service.ErrSyncInProgress):
		out += "\n" + helpStyle.Render("another sync pass is running, try again later")
	}
	return out
}

func resultStatus(r models.ServerSyncResult) string {
	switch {
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Offline:
		return "offline"
	default:
		return "ok"
	}
}

func updateID(id int64) string {
	if id == models.NeverSynced {
		return "never"
	}
	return strconv.FormatInt(id, 10)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
