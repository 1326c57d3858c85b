// Package character pairs the resolved plugin list with a persona and
// encodes the result in the shape the agent framework consumes.
package character

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/erg0nix/callcoach/internal/env"
	"github.com/erg0nix/callcoach/internal/persona"
	"github.com/erg0nix/callcoach/internal/plugin"
	"gopkg.in/yaml.v3"
)

// Character is the resolved configuration handed to the agent framework.
type Character struct {
	Name            string      `json:"name" yaml:"name"`
	Plugins         []string    `json:"plugins" yaml:"plugins"`
	Settings        Settings    `json:"settings" yaml:"settings"`
	System          string      `json:"system" yaml:"system"`
	Bio             []string    `json:"bio" yaml:"bio"`
	Topics          []string    `json:"topics" yaml:"topics"`
	Knowledge       []string    `json:"knowledge" yaml:"knowledge"`
	MessageExamples [][]Message `json:"messageExamples" yaml:"messageExamples"`
	Style           Style       `json:"style" yaml:"style"`
}

type Settings struct {
	Secrets map[string]string `json:"secrets" yaml:"secrets"`
	Avatar  string            `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

type Message struct {
	Name    string  `json:"name" yaml:"name"`
	Content Content `json:"content" yaml:"content"`
}

type Content struct {
	Text string `json:"text" yaml:"text"`
}

type Style struct {
	All  []string `json:"all" yaml:"all"`
	Chat []string `json:"chat" yaml:"chat"`
}

// Resolve builds the character for p with the plugins selected by s. The
// persona content is carried over unchanged.
func Resolve(s env.Snapshot, p persona.Persona) Character {
	c := Character{
		Name:            p.Name,
		Plugins:         plugin.Strings(plugin.Resolve(s)),
		System:          p.System,
		Bio:             nonNil(p.Bio),
		Topics:          nonNil(p.Topics),
		Knowledge:       nonNil(p.Knowledge),
		MessageExamples: make([][]Message, 0, len(p.Examples)),
		Style: Style{
			All:  nonNil(p.Style.All),
			Chat: nonNil(p.Style.Chat),
		},
		Settings: Settings{
			Secrets: map[string]string{},
			Avatar:  p.Settings.Avatar,
		},
	}

	for k, v := range p.Settings.Secrets {
		c.Settings.Secrets[k] = v
	}

	for _, conv := range p.Examples {
		msgs := make([]Message, 0, len(conv))
		for _, m := range conv {
			msgs = append(msgs, Message{Name: m.Speaker, Content: Content{Text: m.Text}})
		}
		c.MessageExamples = append(c.MessageExamples, msgs)
	}

	return c
}

func nonNil(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Format is an output encoding for a character.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &FormatError{Format: s}
	}
}

// Encode writes c to w in the given format.
func (c Character) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode character json: %w", err)
		}
		return nil

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode character yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode character yaml: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err

	default:
		return &FormatError{Format: string(format)}
	}
}

type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported format %q (want json or yaml)", e.Format)
}
