package ai

import (
	"strings"
	"testing"
)

func TestCommentPrompt(t *testing.T) {
	systemPrompt, userPrompt := CommentPrompt("面白いタイトル", "これが本文です。")

	if !strings.Contains(systemPrompt, "オタク口調") {
		t.Errorf("system prompt missing tone instruction: %q", systemPrompt)
	}
	if !strings.Contains(userPrompt, "ブログタイトル: 面白いタイトル") {
		t.Errorf("user prompt missing title: %q", userPrompt)
	}
	if !strings.Contains(userPrompt, "内容: これが本文です。") {
		t.Errorf("user prompt missing body: %q", userPrompt)
	}
}
