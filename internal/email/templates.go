package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title   string
	Heading string
}

type orderConfirmationEmailData struct {
	baseEmailData
	StudioName    string
	Name          string
	ServiceLabels []string
	Budget        string
	Details       string
}

type ownerAlertEmailData struct {
	baseEmailData
	OrderID       string
	Name          string
	Email         string
	Phone         string
	ServiceLabels []string
	Budget        string
	Details       string
	SubmittedAt   string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
