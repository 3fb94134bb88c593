package llm

import "strings"

const systemPrompt = `You are an experienced baseball beat writer. Write accurate, vivid game recaps using only the facts you are given. Do not invent players, scores or statistics. Respond with the recap text only, no headings or markdown.`

func cleanTextResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Single-sentence answers sometimes come back quoted.
	if len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) {
		content = strings.TrimSpace(content[1 : len(content)-1])
	}
	return content
}
