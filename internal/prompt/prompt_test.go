// File path: internal/prompt/prompt_test.go
package prompt

import (
	"strings"
	"testing"

	"github.com/penguinworks/tftcoach/internal/meta"
)

func TestRenderFillsTemplate(t *testing.T) {
	rendered, err := Render(ModeDeckRec, "champion", "[덱 정보] ...", "밀리오 덱 어때?")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"덱을 추천하세요",
		"이미 확보한 챔피언",
		"[덱 정보] ...",
		"밀리오 덱 어때?",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered prompt missing %q:\n%s", want, rendered)
		}
	}
}

func TestRenderUnknownModeFallsBackToGeneral(t *testing.T) {
	rendered, err := Render(Mode("bogus"), "", "ctx", "q")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(rendered, "간결하고 정확하게") {
		t.Fatalf("expected general instruction, got:\n%s", rendered)
	}
}

func TestFormatDocsJoinsTexts(t *testing.T) {
	docs := []meta.Document{
		{Text: "first"},
		{Text: "second"},
	}
	if got := FormatDocs(docs); got != "first\n\nsecond" {
		t.Fatalf("unexpected context block: %q", got)
	}
}

func TestFormatDocsEmptyUsesSentinel(t *testing.T) {
	if got := FormatDocs(nil); got != NoContext {
		t.Fatalf("expected no-context sentinel, got %q", got)
	}
}
