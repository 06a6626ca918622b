package chat

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// emojis is the set of decorative symbols occasionally appended to replies
var emojis = []string{"😀", "🤣", "😊", "👍", "🙌", "😎", "🔥", "✨"}

// emojiProbability is the chance that a reply gets exactly one emoji appended
const emojiProbability = 0.2

const classifierPrompt = "Is the following text a description of a movie or TV show? " +
	"Answer yes or no only.\n\nText: %q\n"

const responderPrompt = "You are a warm, casual friend chatting on Telegram. " +
	"React to what people say in a friendly, informal way and never sound official. " +
	"Here is the user's message:\n%s\nHow do you reply?"

// Client wraps the OpenAI chat-completions API as both an intent classifier
// and a chit-chat responder
type Client struct {
	api   *openai.Client
	model string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient creates an OpenAI-backed chat client
func NewClient(apiKey string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: openai.GPT4oMini,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// IsMovieDescription reports whether the text describes a movie or TV show
func (c *Client) IsMovieDescription(ctx context.Context, text string) (bool, error) {
	answer, err := c.complete(ctx, fmt.Sprintf(classifierPrompt, text))
	if err != nil {
		return false, err
	}
	return answerMeansYes(answer), nil
}

// Reply produces a conversational reply, occasionally decorated with an emoji
func (c *Client) Reply(ctx context.Context, text string) (string, error) {
	reply, err := c.complete(ctx, fmt.Sprintf(responderPrompt, text))
	if err != nil {
		return "", err
	}
	return c.decorate(reply), nil
}

// decorate appends one randomly chosen emoji with probability
// emojiProbability, drawn independently per call
func (c *Client) decorate(reply string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rng.Float64() < emojiProbability {
		reply += " " + emojis[c.rng.Intn(len(emojis))]
	}
	return reply
}

func answerMeansYes(answer string) bool {
	answer = strings.ToLower(answer)
	return strings.Contains(answer, "yes") || strings.Contains(answer, "نعم")
}
