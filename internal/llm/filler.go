// Package llm optionally fills attributes the rule tables left unknown by
// asking a chat model. Suggestions outside the controlled vocabularies are
// discarded, so the engine's closure invariant holds regardless of what the
// model returns.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"aaprj/internal/enrich"
	"aaprj/internal/model"
)

const systemPrompt = `You are an expert antique cataloguer.
Base conclusions only on the provided information.
Avoid exact dates; prefer broad ranges when uncertainty exists.
Use "unknown" when attribution is not possible.
Do not invent provenance, makers, or materials.
Respond using valid JSON only.`

const itemPrompt = `Suggest values for the fields below, as JSON with exactly these keys:
era_or_time_period, region_of_origin, functional_use, material, style.

Item information:
Title: %s
Category: %s
Description: %s`

type suggestion struct {
	Era      string `json:"era_or_time_period"`
	Region   string `json:"region_of_origin"`
	Use      string `json:"functional_use"`
	Material string `json:"material"`
	Style    string `json:"style"`
}

// Filler holds the client and the vocabularies suggestions are clamped to.
type Filler struct {
	Client *openai.Client
	Rules  *enrich.Rules
}

// Fill asks the model about one record and applies only in-vocabulary
// suggestions for attributes that are still unknown, at medium strength.
// The caller re-scores the record from the updated support map.
func (f *Filler) Fill(ctx context.Context, rec *model.EnrichedRecord, support enrich.Support) error {
	description := rec.DescriptionClean
	if description == "" {
		description = model.Unknown
	}

	resp, err := f.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT4oMini,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(itemPrompt, rec.Raw.ItemTitle, rec.CategoryNorm, description),
			},
		},
	})
	if err != nil {
		return err
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("llm: empty response")
	}

	var s suggestion
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &s); err != nil {
		return fmt.Errorf("llm: parsing response: %w", err)
	}

	f.apply(enrich.AttrEra, s.Era, &rec.EraOrTimePeriod, support)
	f.apply(enrich.AttrRegion, s.Region, &rec.RegionOfOrigin, support)
	f.apply(enrich.AttrUse, s.Use, &rec.FunctionalUse, support)
	f.apply(enrich.AttrMaterial, s.Material, &rec.Material, support)
	f.apply(enrich.AttrStyle, s.Style, &rec.Style, support)
	return nil
}

// apply sets one attribute iff it is still unknown and the suggestion is a
// vocabulary value. Everything else fails closed.
func (f *Filler) apply(attr, suggested string, field *string, support enrich.Support) {
	if *field != model.Unknown || suggested == "" || suggested == model.Unknown {
		return
	}
	if !f.Rules.Vocabulary(attr)[suggested] {
		return
	}
	*field = suggested
	support[attr] = enrich.StrengthMedium
}
