package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFill(t *testing.T) {
	tpl := Template{
		Subject: "Service order from {{senderName}}",
		Body:    "Work: {{claimTitle}}\nSite: {{address}}\n\n{{senderName}}",
	}

	subject, body := tpl.Fill(TemplateVars{
		SenderName: "Warranty Team",
		ClaimTitle: "Loose deck railing",
		Address:    "9 Larkfield Dr",
	})

	assert.Equal(t, "Service order from Warranty Team", subject)
	assert.Equal(t, "Work: Loose deck railing\nSite: 9 Larkfield Dr\n\nWarranty Team", body)
}

func TestTemplateFill_UnknownPlaceholderLeftAlone(t *testing.T) {
	tpl := Template{Subject: "{{claimTitle}}", Body: "{{unknown}} and {{address}}"}

	subject, body := tpl.Fill(TemplateVars{ClaimTitle: "Loose deck railing", Address: "9 Larkfield Dr"})

	assert.Equal(t, "Loose deck railing", subject)
	assert.Equal(t, "{{unknown}} and 9 Larkfield Dr", body)
}

func TestTemplateFill_EmptyVars(t *testing.T) {
	tpl := Template{Subject: "{{senderName}}", Body: "{{claimTitle}}"}

	subject, body := tpl.Fill(TemplateVars{})
	assert.Equal(t, "", subject)
	assert.Equal(t, "", body)
}
