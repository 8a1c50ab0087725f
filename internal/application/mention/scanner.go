package mention

import "regexp"

// mentionPattern matches an @ followed by a maximal run of word characters
// (letters, digits, underscore), non-overlapping, left to right. An email
// address embedded in note text matches too: "contact me at a@b.com" mentions
// user "b". The raw text gives no way to tell the two apart, so the ambiguity
// is kept rather than guessed at.
var mentionPattern = regexp.MustCompile(`@(\w+)`)

// Extract returns the distinct mention tokens found in text, in order of
// first appearance, with the leading @ stripped and case preserved. Text with
// no mentions yields an empty result, which is the normal outcome rather
// than an error.
func Extract(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		tokens = append(tokens, m[1])
	}
	return tokens
}
