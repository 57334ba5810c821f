package email

// PreviewData holds sample values for rendering each template outside of a
// real send.
var PreviewData = map[Template]map[string]string{
	TemplateApplicationReceived: ApplicationReceived{
		ApplicationID: 17,
		BusinessName:  "Acme Studio",
		ProjectTitle:  "Marketing site rebuild",
		DeveloperName: "Ada Lovelace",
		CoverLetter:   "I have shipped three similar sites this year.",
	}.templateData(),
}
