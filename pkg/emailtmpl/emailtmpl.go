// Package emailtmpl renders the donor emails. HTML output is self-contained
// with inline styles, and every interpolated field is HTML-escaped. Each email
// also has a plain-text alternative.
package emailtmpl

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

const (
	WelcomeSubject = "Welcome to HUMSJ Monthly Charity - Barakallahu Feek"
	MonthlySubject = "JazakAllah Khair - Your Monthly Donation"
)

const (
	defaultName      = "Donor"
	defaultCauseName = "General Fund"
)

//go:embed templates/*.tmpl
var files embed.FS

var (
	welcomeTmpl = template.Must(template.ParseFS(files, "templates/layout.html.tmpl", "templates/welcome.html.tmpl"))
	monthlyTmpl = template.Must(template.ParseFS(files, "templates/layout.html.tmpl", "templates/monthly.html.tmpl"))

	welcomeText = texttemplate.Must(texttemplate.ParseFS(files, "templates/welcome.txt.tmpl"))
	monthlyText = texttemplate.Must(texttemplate.ParseFS(files, "templates/monthly.txt.tmpl"))
)

type Context struct {
	Name        string
	Amount      int64
	CauseName   string
	Quote       string
	QuoteSource string
}

func RenderWelcome(c Context) (string, error) {
	return render(welcomeTmpl, c)
}

func RenderMonthly(c Context) (string, error) {
	return render(monthlyTmpl, c)
}

func RenderWelcomeText(c Context) (string, error) {
	return renderText(welcomeText, c)
}

func RenderMonthlyText(c Context) (string, error) {
	return renderText(monthlyText, c)
}

func withDefaults(c Context) Context {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.CauseName == "" {
		c.CauseName = defaultCauseName
	}
	return c
}

func renderText(t *texttemplate.Template, c Context) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, withDefaults(c)); err != nil {
		return "", fmt.Errorf("failed to render text email template: %w", err)
	}
	return buf.String(), nil
}

func render(t *template.Template, c Context) (string, error) {
	c = withDefaults(c)
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", c); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}
