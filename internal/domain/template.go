package domain

import (
	"strings"
	"time"
)

// Template is a saved service-order draft (subject + body). Which template is
// the default is tracked as an explicit nullable reference in the store, not
// by a magic ID.
type Template struct {
	ID        string
	Name      string
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TemplateVars are the placeholder values substituted into a template when it
// pre-fills a service-order draft.
type TemplateVars struct {
	SenderName string
	ClaimTitle string
	Address    string
}

// Fill substitutes the supported placeholders into the subject and body.
// Unknown placeholders are left untouched.
func (t Template) Fill(vars TemplateVars) (subject, body string) {
	replacer := strings.NewReplacer(
		"{{senderName}}", vars.SenderName,
		"{{claimTitle}}", vars.ClaimTitle,
		"{{address}}", vars.Address,
	)
	return replacer.Replace(t.Subject), replacer.Replace(t.Body)
}
