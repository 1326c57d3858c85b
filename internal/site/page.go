// Package site renders and serves the static page that introduces the
// coach's coaching and roleplay modes.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

// Mode is one of the two cards describing how the coach can be used.
type Mode struct {
	Icon    string
	Name    string
	Accent  string
	Summary string
	Points  []string
}

// Page is the content of the informational page.
type Page struct {
	Title        string
	Subtitle     string
	Modes        []Mode
	Opening      string
	Pillars      []string
	ClosingTitle string
	ClosingText  string
}

// DefaultPage returns the Cold Calling Coach page content.
func DefaultPage() Page {
	return Page{
		Title:    "Cold Calling Coach",
		Subtitle: "Real Estate Training Assistant",
		Modes: []Mode{
			{
				Icon:    "🎯",
				Name:    "Coaching Mode",
				Accent:  "blue",
				Summary: "Get help with script questions, prequalifying techniques, and objection handling.",
				Points: []string{
					"Script guidance and techniques",
					"The 4 pillars of prequalifying",
					"Objection handling strategies",
					"Phone etiquette tips",
				},
			},
			{
				Icon:    "🎭",
				Name:    "Roleplay Mode",
				Accent:  "green",
				Summary: "Practice with realistic homeowner personas to build confidence.",
				Points: []string{
					"Angry/hostile homeowners",
					"Suspicious homeowners",
					"Motivated sellers",
					"Price-focused homeowners",
				},
			},
		},
		Opening: `"Hi, I am looking for [Name]. My name is [Your Name] and I am sorry this call is out of the blue... ` +
			`but I was calling about a home I believe you own on [Address]. I am actually looking to buy a home ` +
			`in the neighborhood and wanted to see if you had thought about selling it.... or would consider an offer?"`,
		Pillars: []string{
			"Condition of the home",
			"Timeline to sell",
			"Motivation",
			"Price",
		},
		ClosingTitle: "Ready to Practice?",
		ClosingText: "This coach is designed to help real estate agents master cold calling through " +
			"interactive coaching and realistic roleplay scenarios.",
	}
}

// Render writes p as a complete HTML document.
func Render(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderBytes renders p into memory so it can be served repeatedly.
func RenderBytes(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
