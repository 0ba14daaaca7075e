package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/lehoangvu-dev/vidbrief/pkg/retry"
)

const transcriptPrompt = `You are an expert at analyzing video content. Based on the timestamped transcript below, write a detailed summary.

Requirements:
- Start with a one-sentence title describing the topic
- List ALL main points in order of appearance
- Explain each point, including important caveats and warnings
- Use markdown: headings, bullet points, bold for key terms
- End with a "Key takeaways" section

Transcript:
---
%s
---`

const videoPrompt = `You are an expert at analyzing video content. Watch the video and write a detailed summary.

Requirements:
- Start with a one-sentence title describing the topic
- List ALL main points in order of appearance
- Explain each point, including important caveats and warnings
- Use markdown: headings, bullet points, bold for key terms
- End with a "Key takeaways" section`

func (s *implSummarizer) SummarizeText(ctx context.Context, transcript string) (string, error) {
	s.logger.Info(ctx, "Summarizing transcript (%d characters)", len(transcript))

	prompt := fmt.Sprintf(transcriptPrompt, transcript)
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(fmt.Errorf("generate content: %w", err))
	}

	return collectText(result)
}

func (s *implSummarizer) SummarizeSource(ctx context.Context, sourceRef string) (string, error) {
	s.logger.Info(ctx, "Summarizing video source directly: %s", sourceRef)

	parts := []*genai.Part{
		genai.NewPartFromURI(sourceRef, "video/mp4"),
		genai.NewPartFromText(videoPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", classify(fmt.Errorf("generate content: %w", err))
	}

	return collectText(result)
}

// collectText concatenates the text parts of the first candidate.
func collectText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

// classify tags transient upstream failures so the retry layer can tell them
// apart from fatal ones by field comparison rather than text search. The API
// error code is authoritative; the message scan only covers SDK errors that
// lose the structured code.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return retry.MarkTransient(apiErr.Code, err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "503") || strings.Contains(msg, "UNAVAILABLE"):
		return retry.MarkTransient(503, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") || strings.Contains(msg, "quota"):
		return retry.MarkTransient(429, err)
	case strings.Contains(msg, "408") || strings.Contains(msg, "DEADLINE_EXCEEDED"):
		return retry.MarkTransient(408, err)
	}
	return err
}
