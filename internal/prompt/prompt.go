// File path: internal/prompt/prompt.go
package prompt

import (
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"github.com/penguinworks/tftcoach/internal/meta"
)

// Mode selects which coaching persona answers the question.
type Mode string

const (
	ModeGeneral    Mode = "general"
	ModeDeckRec    Mode = "deck_rec"
	ModeItemRec    Mode = "item_rec"
	ModeAugmentRec Mode = "augment_rec"
)

// NoContext is rendered in place of retrieved documents when retrieval
// came back empty, so the model knows it is answering unaided.
const NoContext = "검색된 관련 정보가 없습니다."

const baseTemplate = `당신은 TFT(롤토체스) 전략 코치입니다. 아래 검색된 메타 정보를 근거로만 답하세요.
정보에 없는 내용은 추측하지 말고 모른다고 답하세요.

{{.instruction}}

[검색된 정보]
{{.context}}

[질문]
{{.question}}`

var instructions = map[Mode]string{
	ModeGeneral:    "질문에 간결하고 정확하게 답하세요.",
	ModeDeckRec:    "플레이어의 상황에 맞는 덱을 추천하세요. 덱 이름, 티어, 핵심 챔피언과 아이템을 순서대로 설명하세요.",
	ModeItemRec:    "보유 상황에 맞는 아이템 조합을 추천하세요. 조합법과 어떤 챔피언에게 줄지 설명하세요.",
	ModeAugmentRec: "현재 덱 구성에 어울리는 증강체를 추천하고 이유를 설명하세요.",
}

var subModeHints = map[string]string{
	"champion": "플레이어가 이미 확보한 챔피언을 기준으로 추천하세요.",
	"item":     "플레이어가 보유한 아이템을 기준으로 추천하세요.",
	"synergy":  "플레이어가 가진 상징과 특성을 기준으로 추천하세요.",
	"leftover": "현재 덱에서 남는 아이템의 처리 방안을 우선 설명하세요.",
}

// Template returns the shared coach prompt template. The mode only
// changes the instruction filled into it.
func Template() prompts.PromptTemplate {
	return prompts.NewPromptTemplate(baseTemplate, []string{"instruction", "context", "question"})
}

// Render fills the mode template with retrieved context and the user
// question.
func Render(mode Mode, subMode, contextText, question string) (string, error) {
	instruction, ok := instructions[mode]
	if !ok {
		instruction = instructions[ModeGeneral]
	}
	if hint, ok := subModeHints[strings.TrimSpace(subMode)]; ok {
		instruction = instruction + " " + hint
	}
	return Template().Format(map[string]any{
		"instruction": instruction,
		"context":     contextText,
		"question":    question,
	})
}

// FormatDocs joins retrieved document texts into the context block.
func FormatDocs(docs []meta.Document) string {
	if len(docs) == 0 {
		return NoContext
	}
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		texts = append(texts, doc.Text)
	}
	return strings.Join(texts, "\n\n")
}
