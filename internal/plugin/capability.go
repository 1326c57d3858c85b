// Package plugin decides which agent framework plugins to load from the
// credentials present in an environment snapshot.
package plugin

// Capability names a plugin the agent framework can load.
type Capability string

const (
	SQL         Capability = "@elizaos/plugin-sql"
	Anthropic   Capability = "@elizaos/plugin-anthropic"
	OpenRouter  Capability = "@elizaos/plugin-openrouter"
	OpenAI      Capability = "@elizaos/plugin-openai"
	GoogleGenAI Capability = "@elizaos/plugin-google-genai"
	Ollama      Capability = "@elizaos/plugin-ollama"
	Discord     Capability = "@elizaos/plugin-discord"
	Twitter     Capability = "@elizaos/plugin-twitter"
	Telegram    Capability = "@elizaos/plugin-telegram"
	Bootstrap   Capability = "@elizaos/plugin-bootstrap"
)

// Group is the precedence band a capability belongs to. Bands are emitted
// in the order they are declared below.
type Group string

const (
	GroupCore      Group = "core"
	GroupText      Group = "text"
	GroupEmbedding Group = "embedding"
	GroupFallback  Group = "fallback"
	GroupPlatform  Group = "platform"
	GroupBootstrap Group = "bootstrap"
)

// Credential flags read from the environment.
const (
	FlagAnthropicAPIKey          = "ANTHROPIC_API_KEY"
	FlagOpenRouterAPIKey         = "OPENROUTER_API_KEY"
	FlagOpenAIAPIKey             = "OPENAI_API_KEY"
	FlagGoogleGenAIAPIKey        = "GOOGLE_GENERATIVE_AI_API_KEY"
	FlagOllamaAPIEndpoint        = "OLLAMA_API_ENDPOINT"
	FlagDiscordAPIToken          = "DISCORD_API_TOKEN"
	FlagTwitterAPIKey            = "TWITTER_API_KEY"
	FlagTwitterAPISecretKey      = "TWITTER_API_SECRET_KEY"
	FlagTwitterAccessToken       = "TWITTER_ACCESS_TOKEN"
	FlagTwitterAccessTokenSecret = "TWITTER_ACCESS_TOKEN_SECRET"
	FlagTelegramBotToken         = "TELEGRAM_BOT_TOKEN"
	FlagIgnoreBootstrap          = "IGNORE_BOOTSTRAP"
)

// Mode is how a rule's flags gate its capability.
type Mode int

const (
	// Always includes the capability regardless of flags.
	Always Mode = iota
	// RequireAll includes the capability only when every flag is set.
	RequireAll
	// UnlessSet includes the capability unless its flag is set.
	UnlessSet
)

func (m Mode) String() string {
	switch m {
	case Always:
		return "always"
	case RequireAll:
		return "requires"
	case UnlessSet:
		return "unless"
	default:
		return "unknown"
	}
}
