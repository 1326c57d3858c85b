// Package persona defines the character the agent framework plays: its
// identity, instructions, knowledge, example dialogues and style rules.
package persona

import (
	"maps"
	"slices"
)

// Message is one utterance in an example conversation.
type Message struct {
	Speaker string
	Text    string
}

// Conversation is an ordered example transcript.
type Conversation []Message

// Style holds the directives applied to every reply (All) and to chat
// replies only (Chat).
type Style struct {
	All  []string
	Chat []string
}

// Settings are framework settings carried alongside the persona.
type Settings struct {
	Avatar  string
	Secrets map[string]string
}

// Persona is the static descriptor handed to the agent framework. Values
// returned from this package are copies; mutating them does not affect
// the bundled persona.
type Persona struct {
	Name      string
	System    string
	Bio       []string
	Topics    []string
	Knowledge []string
	Examples  []Conversation
	Style     Style
	Settings  Settings
}

// Clone returns a deep copy of p.
func (p Persona) Clone() Persona {
	out := p
	out.Bio = slices.Clone(p.Bio)
	out.Topics = slices.Clone(p.Topics)
	out.Knowledge = slices.Clone(p.Knowledge)
	out.Style.All = slices.Clone(p.Style.All)
	out.Style.Chat = slices.Clone(p.Style.Chat)
	out.Settings.Secrets = maps.Clone(p.Settings.Secrets)

	if p.Examples != nil {
		out.Examples = make([]Conversation, len(p.Examples))
		for i, c := range p.Examples {
			out.Examples[i] = slices.Clone(c)
		}
	}
	return out
}

// PersonaTOML is the on-disk form of persona.toml. The system prompt and
// long knowledge entries usually live in sibling files instead.
type PersonaTOML struct {
	Name      string             `toml:"name"`
	System    string             `toml:"system,omitempty"`
	Bio       []string           `toml:"bio"`
	Topics    []string           `toml:"topics"`
	Knowledge []string           `toml:"knowledge,omitempty"`
	Settings  SettingsTOML       `toml:"settings"`
	Style     StyleTOML          `toml:"style"`
	Examples  []ConversationTOML `toml:"examples"`
}

type SettingsTOML struct {
	Avatar  string            `toml:"avatar,omitempty"`
	Secrets map[string]string `toml:"secrets,omitempty"`
}

type StyleTOML struct {
	All  []string `toml:"all"`
	Chat []string `toml:"chat"`
}

type ConversationTOML struct {
	Messages []MessageTOML `toml:"messages"`
}

type MessageTOML struct {
	Name string `toml:"name"`
	Text string `toml:"text"`
}

func (t PersonaTOML) persona() Persona {
	p := Persona{
		Name:      t.Name,
		System:    t.System,
		Bio:       t.Bio,
		Topics:    t.Topics,
		Knowledge: t.Knowledge,
		Style:     Style{All: t.Style.All, Chat: t.Style.Chat},
		Settings:  Settings{Avatar: t.Settings.Avatar, Secrets: t.Settings.Secrets},
	}

	for _, c := range t.Examples {
		conv := make(Conversation, 0, len(c.Messages))
		for _, m := range c.Messages {
			conv = append(conv, Message{Speaker: m.Name, Text: m.Text})
		}
		p.Examples = append(p.Examples, conv)
	}
	return p
}
