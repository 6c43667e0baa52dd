// Package analyze defines the contract between the diary and the
// generative-model providers: the prompt, the structured response
// schema, and its decoding.
package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Shining04/Kcal.txt/internal/model"
)

// SystemInstruction configures the model as a nutrition coach that
// answers only with the fixed JSON schema, including an empathetic
// comment in the user's language.
const SystemInstruction = `You are a warm, professional nutrition coach analyzing the user's diet diary.
1) Extract the food items and approximate calories from the text.
2) Put a fitting emoji for each food in the "emoji" field.
3) Write a short empathetic comment (1-2 sentences) in the user's own language in "ai_comment", acknowledging their mood or situation (busy, sad, happy, ...).
Respond ONLY with JSON in this exact shape. Never include any other text.

{
  "total_kcal": <total calorie sum>,
  "items": [
    { "name": "<food name>", "kcal": <calories>, "emoji": "<emoji>" }
  ],
  "ai_comment": "<a warm remark>"
}

Example input: "too busy, grabbed two rice balls from the convenience store"
Example output: {"total_kcal": 400, "items": [{"name": "rice ball", "kcal": 200, "emoji": "🍙"}, {"name": "rice ball", "kcal": 200, "emoji": "🍙"}], "ai_comment": "Even on a packed day you made sure to eat something. How about a warm bowl of soup tomorrow? 😊"}`

// DefaultModel matches the original app's model choice.
const DefaultModel = "gemini-2.5-flash"

// ErrEmptyResponse marks a response with no usable body, as opposed to
// a body that fails to decode.
var ErrEmptyResponse = errors.New("empty analysis response")

// Analysis is a decoded model response.
type Analysis struct {
	Foods         []model.FoodItem
	TotalCalories int
	Comment       string
}

// Analyzer is implemented by the provider clients. Analyze sends the
// raw diary text and returns the decoded result. No retry, no backoff;
// the transport's own timeout is the only deadline.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Analysis, error)
}

type response struct {
	TotalKcal *int    `json:"total_kcal"`
	Items     []item  `json:"items"`
	AIComment *string `json:"ai_comment"`
}

type item struct {
	Name  string `json:"name"`
	Kcal  int    `json:"kcal"`
	Emoji string `json:"emoji"`
}

// Decode parses the model's JSON reply. Markdown code fences are
// tolerated; anything else that deviates from the schema is a decode
// failure. total_kcal and items are required, emoji defaults per item,
// ai_comment defaults to empty.
func Decode(raw string) (Analysis, error) {
	body := stripFences(raw)
	if body == "" {
		return Analysis{}, ErrEmptyResponse
	}

	var parsed response
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return Analysis{}, fmt.Errorf("decode analysis response: %w", err)
	}
	if parsed.TotalKcal == nil {
		return Analysis{}, fmt.Errorf("decode analysis response: missing total_kcal")
	}
	if parsed.Items == nil {
		return Analysis{}, fmt.Errorf("decode analysis response: missing items")
	}

	foods := make([]model.FoodItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		emoji := strings.TrimSpace(it.Emoji)
		if emoji == "" {
			emoji = model.DefaultEmoji
		}
		foods = append(foods, model.FoodItem{
			Emoji:    emoji,
			Name:     it.Name,
			Calories: it.Kcal,
		})
	}

	comment := ""
	if parsed.AIComment != nil {
		comment = *parsed.AIComment
	}

	return Analysis{
		Foods:         foods,
		TotalCalories: *parsed.TotalKcal,
		Comment:       comment,
	}, nil
}

// stripFences removes a surrounding ```json ... ``` block that some
// models wrap around an otherwise valid reply.
func stripFences(raw string) string {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
		body = strings.TrimSpace(body)
	}
	return body
}
