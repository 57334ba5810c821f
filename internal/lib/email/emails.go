package email

import "strconv"

// ApplicationReceived is the content of the mail a business gets when a
// developer applies to one of its projects.
type ApplicationReceived struct {
	ApplicationID int64
	BusinessName  string
	ProjectTitle  string
	DeveloperName string
	CoverLetter   string
}

func (c *Client) SendApplicationReceivedEmail(to string, data ApplicationReceived) error {
	return c.SendEmail(
		to,
		"New application for "+data.ProjectTitle,
		TemplateApplicationReceived,
		data.templateData(),
	)
}

func (d ApplicationReceived) templateData() map[string]string {
	return map[string]string{
		"ApplicationID": strconv.FormatInt(d.ApplicationID, 10),
		"BusinessName":  d.BusinessName,
		"ProjectTitle":  d.ProjectTitle,
		"DeveloperName": d.DeveloperName,
		"CoverLetter":   d.CoverLetter,
	}
}
