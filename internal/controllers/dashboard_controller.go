package controllers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"nellis/internal/services"
)

type DashboardController struct {
	service  services.DashboardServiceInterface
	renderer *Renderer
	printer  *Printer
}

func NewDashboardController(service services.DashboardServiceInterface, renderer *Renderer, printer *Printer) *DashboardController {
	return &DashboardController{service: service, renderer: renderer, printer: printer}
}

type dashboardJSON struct {
	Stats    services.DashboardStats `json:"stats"`
	Activity []activityJSON          `json:"activity"`
}

type activityJSON struct {
	Page    string    `json:"page"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Stats renders the stat cards followed by recent activity.
func (dc *DashboardController) Stats(w io.Writer) error {
	stats := dc.service.Stats()
	if dc.renderer.json {
		return dc.renderer.writeJSON(w, dashboardJSON{Stats: stats, Activity: toActivityJSON(dc.service.Recent())})
	}

	dc.printer.Heading(w, "Dashboard")
	for _, card := range stats.Cards() {
		dc.printer.Status(w, card.Label, "%d", card.Value)
	}
	fmt.Fprintln(w)
	return dc.Activity(w)
}

func (dc *DashboardController) Activity(w io.Writer) error {
	recent := dc.service.Recent()
	if dc.renderer.json {
		return dc.renderer.writeJSON(w, toActivityJSON(recent))
	}

	dc.printer.Heading(w, "Recent Activity")
	if len(recent) == 0 {
		_, err := fmt.Fprintln(w, "  no activity yet")
		return err
	}
	rows := make([][]string, len(recent))
	for i, a := range recent {
		rows[i] = []string{a.At.Format(time.Kitchen), strings.ToLower(a.Page), a.Message}
	}
	return writeTable(w, []string{"Time", "Page", "Message"}, rows)
}

func toActivityJSON(items []services.Activity) []activityJSON {
	out := make([]activityJSON, len(items))
	for i, a := range items {
		out[i] = activityJSON{Page: a.Page, Message: a.Message, At: a.At}
	}
	return out
}
