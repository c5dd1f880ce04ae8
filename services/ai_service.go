package services

import (
	"context"
	"log"
	"strings"

	"github.com/Aaron629/today-go-where-bot/config/environment"
	openai "github.com/sashabaranov/go-openai"
)

// AIMode selects the assistant persona for a generated reply.
type AIMode string

const (
	AIModeNone      AIMode = ""
	AIModeSummary   AIMode = "summary"
	AIModeTranslate AIMode = "translate"
	AIModeRewrite   AIMode = "rewrite"
)

// LINE rejects text messages much longer than this, so replies are cut early.
const maxLineTextRunes = 1900

// TextGenerator is the generative-text collaborator seen by the dialogue
// router.
type TextGenerator interface {
	GenerateText(ctx context.Context, mode AIMode, userText string) string
}

// AIService talks to the OpenAI chat completion API. Every failure is folded
// into a user-facing apology; callers never see an error.
type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService() *AIService {
	key := environment.GetOpenAIKey()
	if key == "" {
		return &AIService{}
	}
	return &AIService{
		client: openai.NewClient(key),
		model:  openai.GPT4oMini,
	}
}

func systemPromptByMode(mode AIMode) string {
	switch mode {
	case AIModeSummary:
		return "請用繁體中文條列精準摘要（不超過 8 點）。"
	case AIModeTranslate:
		return "把使用者文字翻成流暢的繁體中文，保留專有名詞。"
	case AIModeRewrite:
		return "將使用者文字改寫得更清楚、精煉、正式，保留原意。"
	default:
		return "你是友善、精簡的繁體中文助理。"
	}
}

// GenerateText implements TextGenerator.
func (s *AIService) GenerateText(ctx context.Context, mode AIMode, userText string) string {
	if s.client == nil {
		return "尚未設定 OPENAI_API_KEY，暫時無法使用 AI 功能。"
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPromptByMode(mode)},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return "目前有點塞車，稍後再試一次～"
	}

	text := ""
	if len(resp.Choices) > 0 {
		text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	if text == "" {
		return "我在，請再說一次～"
	}

	if runes := []rune(text); len(runes) > maxLineTextRunes {
		text = string(runes[:maxLineTextRunes]) + "\n…（內容過長已截斷）"
	}
	return text
}
