package gemini

import "github.com/ericfisherdev/kotranslate/internal/domain/model"

// promptPreamble instructs the model to translate while keeping layout. The
// input text is appended after it without any processing.
const promptPreamble = `Please translate the following text into ` + model.TargetLanguage + `.
IMPORTANT INSTRUCTION: Preserve the original line breaks, indentation, and spacing exactly as they appear in the input text. Do not add any extra characters or formatting like '---' separators. Just provide the translated text with the original formatting.

Input Text to Translate:
`

// safetyThreshold applies to every harm category we configure.
const safetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"

var safetyCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// finishReasonStop is the normal completion reason; finishReasonSafety means the
// output was withheld by a safety filter.
const (
	finishReasonStop   = "STOP"
	finishReasonSafety = "SAFETY"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	CandidateCount int `json:"candidateCount"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// generateRequest is the generateContent request body.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

// generateResponse is the subset of the generateContent response we read.
type generateResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// errorResponse is the error envelope returned with non-success statuses.
type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// buildPrompt appends text verbatim to the fixed instruction.
func buildPrompt(text string) string {
	return promptPreamble + text
}

func newGenerateRequest(text string) generateRequest {
	settings := make([]safetySetting, 0, len(safetyCategories))
	for _, category := range safetyCategories {
		settings = append(settings, safetySetting{Category: category, Threshold: safetyThreshold})
	}

	return generateRequest{
		Contents:         []content{{Parts: []part{{Text: buildPrompt(text)}}}},
		GenerationConfig: generationConfig{CandidateCount: 1},
		SafetySettings:   settings,
	}
}
