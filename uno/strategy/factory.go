package strategy

import (
	"math/rand"
	"os"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// BotNames returns amount distinct display names for bot seats.
func BotNames(amount int) []string {
	if amount > len(botNames) {
		amount = len(botNames)
	}
	shuffled := make([]string, len(botNames))
	copy(shuffled, botNames)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:amount]
}

// RegisterDefaults fills a registry with the built-in strategies. The openai
// strategy is only registered when OPENAI_API_KEY is set; it wraps greedy as
// its fallback.
func RegisterDefaults(registry *Registry, openAIModel string) {
	registry.Register("naive", NewNaive)
	registry.Register("greedy", NewGreedy)
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		registry.Register("openai", func() Strategy {
			return NewOpenAI(apiKey, openAIModel, NewGreedy())
		})
	}
}
