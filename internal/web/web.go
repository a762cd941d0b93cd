// Package web renders the server-side HTML pages. Templates are embedded;
// each page is parsed together with the base layout into its own set.
package web

import (
	"embed"
	"html/template"
	"io"

	"meetPlanner/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Branding carries the profile links and footer tagline shown on every page.
type Branding struct {
	GitHubURL   string
	LinkedInURL string
	Tagline     string
}

type Renderer struct {
	tmplIndex    *template.Template
	tmplNewEvent *template.Template
	tmplEvent    *template.Template
	branding     Branding
}

func NewRenderer(branding Branding) *Renderer {
	const base = "templates/base.html"

	return &Renderer{
		tmplIndex:    template.Must(template.ParseFS(templatesFS, base, "templates/index.html")),
		tmplNewEvent: template.Must(template.ParseFS(templatesFS, base, "templates/new_event.html")),
		tmplEvent:    template.Must(template.ParseFS(templatesFS, base, "templates/event.html")),
		branding:     branding,
	}
}

type pageData struct {
	Branding  Branding
	Events    []models.Event
	Event     *models.Event
	Attendees []models.Attendee
	Statuses  []string
}

func (rd *Renderer) Index(w io.Writer, events []models.Event) error {
	return rd.tmplIndex.ExecuteTemplate(w, "base.html", pageData{
		Branding: rd.branding,
		Events:   events,
	})
}

func (rd *Renderer) NewEvent(w io.Writer) error {
	return rd.tmplNewEvent.ExecuteTemplate(w, "base.html", pageData{
		Branding: rd.branding,
	})
}

func (rd *Renderer) Event(w io.Writer, event *models.Event, attendees []models.Attendee) error {
	return rd.tmplEvent.ExecuteTemplate(w, "base.html", pageData{
		Branding:  rd.branding,
		Event:     event,
		Attendees: attendees,
		Statuses: []string{
			models.RSVPStatusAttending,
			models.RSVPStatusNotAttending,
			models.RSVPStatusMaybe,
		},
	})
}
