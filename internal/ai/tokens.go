package ai

import (
	"sync"

	"github.com/tiktoken-go/tokenizer"
)

var (
	codecOnce sync.Once
	codec     tokenizer.Codec
)

// EstimateTokens approximates the number of tokens of text with the GPT-4
// encoding. It is only meant for logging prompt sizes; when the codec is not
// available it falls back to four characters per token.
func EstimateTokens(text string) int {
	codecOnce.Do(func() {
		c, err := tokenizer.ForModel(tokenizer.GPT4)
		if err == nil {
			codec = c
		}
	})

	if codec == nil {
		return len(text) / 4
	}

	count, err := codec.Count(text)
	if err != nil {
		return len(text) / 4
	}
	return count
}
