package config

type AI string

const (
	AIGemini    AI = "gemini"
	AIAnthropic AI = "anthropic"
	AIOpenAI    AI = "openai"
	AIOllama    AI = "ollama"
)

type Model string

const (
	ModelGeminiV25Pro       Model = "gemini-2.5-pro"
	ModelGeminiV25Flash     Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite Model = "gemini-2.5-flash-lite"

	ModelClaudeSonnet4 Model = "claude-sonnet-4-5"
	ModelClaudeHaiku4  Model = "claude-haiku-4-5"

	ModelGPTV4o     Model = "gpt-4o"
	ModelGPTV4oMini Model = "gpt-4o-mini"

	ModelOllamaLlama32 Model = "llama3.2"
	ModelOllamaQwen25  Model = "qwen2.5-coder"
	ModelOllamaMistral Model = "mistral"
)

const DefaultOllamaHostURL = "http://localhost:11434"

func SupportedAIs() []AI {
	return []AI{
		AIGemini,
		AIAnthropic,
		AIOpenAI,
		AIOllama,
	}
}

// IsSupportedAI reports whether ai is one of SupportedAIs.
func IsSupportedAI(ai AI) bool {
	for _, supported := range SupportedAIs() {
		if supported == ai {
			return true
		}
	}
	return false
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIGemini:
		return []Model{
			ModelGeminiV25Flash,
			ModelGeminiV25Pro,
			ModelGeminiV25FlashLite,
		}
	case AIAnthropic:
		return []Model{
			ModelClaudeSonnet4,
			ModelClaudeHaiku4,
		}
	case AIOpenAI:
		return []Model{
			ModelGPTV4oMini,
			ModelGPTV4o,
		}
	case AIOllama:
		return []Model{
			ModelOllamaLlama32,
			ModelOllamaQwen25,
			ModelOllamaMistral,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// RequiresAPIKey reports whether the provider needs an API key. Ollama runs
// locally and does not.
func RequiresAPIKey(ai AI) bool {
	return ai != AIOllama
}
