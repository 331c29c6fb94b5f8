package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// DescriptionInput describes the listing a draft is requested for.
type DescriptionInput struct {
	Title        string
	City         string
	PropertyType string
	Amenities    []string
}

// SuggestListingDescription drafts a listing description from the basic
// facts using OpenAI GPT.
func (s *AIService) SuggestListingDescription(ctx context.Context, input DescriptionInput) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	amenities := "none listed"
	if len(input.Amenities) > 0 {
		amenities = strings.Join(input.Amenities, ", ")
	}

	prompt := fmt.Sprintf(`You write short descriptions for room-for-rent listings on a roommate marketplace.

Listing title: %s
City: %s
Property type: %s
Amenities: %s

Write a friendly, factual description of 2-3 sentences. Do not invent amenities or details that are not listed above. Return only the description text, no quotes and no preamble.`,
		input.Title, input.City, input.PropertyType, amenities)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
