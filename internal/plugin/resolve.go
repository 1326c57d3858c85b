package plugin

import (
	"slices"

	"github.com/erg0nix/callcoach/internal/env"
)

// Rule gates one capability on a set of credential flags.
type Rule struct {
	Capability Capability
	Group      Group
	Mode       Mode
	Flags      []string
}

// Selected reports whether the rule includes its capability for s.
func (r Rule) Selected(s env.Snapshot) bool {
	switch r.Mode {
	case Always:
		return true
	case RequireAll:
		return s.AllSet(r.Flags...)
	case UnlessSet:
		for _, flag := range r.Flags {
			if s.IsSet(flag) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// rules is the fixed load order. The fallback is not exclusive with the
// text or embedding providers: it is loaded whenever its endpoint is set.
var rules = []Rule{
	{Capability: SQL, Group: GroupCore, Mode: Always},

	{Capability: Anthropic, Group: GroupText, Mode: RequireAll, Flags: []string{FlagAnthropicAPIKey}},
	{Capability: OpenRouter, Group: GroupText, Mode: RequireAll, Flags: []string{FlagOpenRouterAPIKey}},

	{Capability: OpenAI, Group: GroupEmbedding, Mode: RequireAll, Flags: []string{FlagOpenAIAPIKey}},
	{Capability: GoogleGenAI, Group: GroupEmbedding, Mode: RequireAll, Flags: []string{FlagGoogleGenAIAPIKey}},

	{Capability: Ollama, Group: GroupFallback, Mode: RequireAll, Flags: []string{FlagOllamaAPIEndpoint}},

	{Capability: Discord, Group: GroupPlatform, Mode: RequireAll, Flags: []string{FlagDiscordAPIToken}},
	{Capability: Twitter, Group: GroupPlatform, Mode: RequireAll, Flags: []string{
		FlagTwitterAPIKey,
		FlagTwitterAPISecretKey,
		FlagTwitterAccessToken,
		FlagTwitterAccessTokenSecret,
	}},
	{Capability: Telegram, Group: GroupPlatform, Mode: RequireAll, Flags: []string{FlagTelegramBotToken}},

	{Capability: Bootstrap, Group: GroupBootstrap, Mode: UnlessSet, Flags: []string{FlagIgnoreBootstrap}},
}

// Rules returns a copy of the rule table in load order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Flags = slices.Clone(r.Flags)
		out[i] = r
	}
	return out
}

// Flags returns every credential flag the rules read, in rule order.
func Flags() []string {
	var flags []string
	for _, r := range rules {
		for _, f := range r.Flags {
			if !slices.Contains(flags, f) {
				flags = append(flags, f)
			}
		}
	}
	return flags
}

// Resolve returns the capabilities to load for s, in load order. The core
// capability is always first.
func Resolve(s env.Snapshot) []Capability {
	out := make([]Capability, 0, len(rules))
	for _, r := range rules {
		if r.Selected(s) {
			out = append(out, r.Capability)
		}
	}
	return out
}

// Decision records the outcome of one rule.
type Decision struct {
	Rule     Rule
	Selected bool
	// Missing lists the flags that kept a RequireAll rule from matching,
	// or the flag that suppressed an UnlessSet rule.
	Missing []string
}

// Explain evaluates every rule against s.
func Explain(s env.Snapshot) []Decision {
	out := make([]Decision, 0, len(rules))
	for _, r := range Rules() {
		d := Decision{Rule: r, Selected: r.Selected(s)}
		for _, flag := range r.Flags {
			set := s.IsSet(flag)
			if (r.Mode == RequireAll && !set) || (r.Mode == UnlessSet && set) {
				d.Missing = append(d.Missing, flag)
			}
		}
		out = append(out, d)
	}
	return out
}

// Strings converts capabilities to their identifiers.
func Strings(caps []Capability) []string {
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = string(c)
	}
	return out
}
