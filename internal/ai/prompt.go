package ai

import "strings"

const commentSystemPrompt = `あなたはブログの熱心な読者です。次のブログ内容に対して、オタク口調でコメントを書いてください。コメント本文のみを返してください。前置きや引用符は不要です。`

// CommentPrompt builds the system and user prompts for comment generation.
func CommentPrompt(title, body string) (systemPrompt string, userPrompt string) {
	var b strings.Builder
	b.WriteString("ブログタイトル: ")
	b.WriteString(title)
	b.WriteString("\n内容: ")
	b.WriteString(body)
	b.WriteString("\n")

	return commentSystemPrompt, b.String()
}
