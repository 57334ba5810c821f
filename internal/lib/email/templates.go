package email

import "embed"

type Template string

const (
	TemplateApplicationReceived Template = "application_received"
)

//go:embed templates/*.html
var templateFS embed.FS
