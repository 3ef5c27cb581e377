// Package docgen renders point-in-time claim snapshots for dispatch to
// contractors. Real deployments swap in a PDF renderer; the text generator
// here is the reference implementation.
package docgen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/builderops/warrantydesk/internal/domain"
)

// Generator renders a service order from a claim plus an admin-edited
// summary. The result is an opaque document handed to the dispatcher.
type Generator interface {
	RenderServiceOrder(claim *domain.Claim, summary string) ([]byte, error)
}

const serviceOrderText = `SERVICE ORDER {{.Number}}
{{.Title}}

Property: {{.Address}}
Homeowner: {{.HomeownerName}} <{{.HomeownerEmail}}>
{{- if .BuilderName}}
Builder: {{.BuilderName}}{{end}}
{{- if .ContractorName}}
Assigned to: {{.ContractorName}} <{{.ContractorEmail}}>{{end}}
{{- if .Appointment}}
Appointment: {{.Appointment}}{{end}}

{{.Summary}}
{{- if .Attachments}}

Photos:
{{- range .Attachments}}
  - {{.Name}} ({{.Location}})
{{- end}}
{{- end}}
`

type serviceOrderData struct {
	Number          string
	Title           string
	Address         string
	HomeownerName   string
	HomeownerEmail  string
	BuilderName     string
	ContractorName  string
	ContractorEmail string
	Appointment     string
	Summary         string
	Attachments     []domain.Attachment
}

// TextGenerator renders service orders as plain text.
type TextGenerator struct {
	tmpl *template.Template
}

func NewTextGenerator() *TextGenerator {
	return &TextGenerator{
		tmpl: template.Must(template.New("service_order").Parse(serviceOrderText)),
	}
}

func (g *TextGenerator) RenderServiceOrder(claim *domain.Claim, summary string) ([]byte, error) {
	data := serviceOrderData{
		Number:          claim.Number,
		Title:           claim.Title,
		Address:         claim.Address,
		HomeownerName:   claim.HomeownerName,
		HomeownerEmail:  claim.HomeownerEmail,
		BuilderName:     claim.BuilderName,
		ContractorName:  claim.ContractorName,
		ContractorEmail: claim.ContractorEmail,
		Summary:         summary,
		Attachments:     claim.ImageAttachments(),
	}
	if d := claim.AcceptedDate(); d != nil {
		data.Appointment = fmt.Sprintf("%s (%s)", d.Date.Format("Jan 2, 2006"), d.Slot)
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering service order: %w", err)
	}
	return buf.Bytes(), nil
}
