package intent

import (
	"regexp"
	"strings"
)

// Tier-1 deterministic rules. Checked in fixed priority order, first match
// wins: completion and deletion before update/list/creation, creation last
// with a catch-all default. Deterministic by construction so the common short
// commands never depend on the generative fallback.

var (
	completeTargetRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bmark\s+(.+?)\s+as\s+done\b`),
		regexp.MustCompile(`(?i)\b(?:check|tick)\s+off\s+(.+)$`),
		regexp.MustCompile(`(?i)\b(?:complete|finish)\s+(.+)$`),
	}

	deleteTargetRe = regexp.MustCompile(`(?i)\b(?:delete|remove|cancel|drop)\s+(.+)$`)

	updateTemplateRe = regexp.MustCompile(`(?i)\b(?:update|change|modify|edit)\s+(.+?)\s+to\s+(.+)$`)

	creationVerbRe = regexp.MustCompile(`(?i)^(?:add|create|new|make)\s+(.+)$`)
)

// classifyRules runs the Tier-1 rules. A zero-value Intent with ActionUnclear
// signals "fall through to Tier 2".
func classifyRules(text string) Intent {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minCommandLength {
		return Intent{Action: ActionUnclear, Confidence: ConfidenceUnclear}
	}
	lowered := strings.ToLower(trimmed)

	// 1. Completion: keyword set, then past-tense templates.
	if phrase := firstContainedPhrase(lowered, completionKeywords); phrase != "" {
		return Intent{
			Action:     ActionComplete,
			TargetTask: extractTarget(trimmed, lowered, completeTargetRes),
			Confidence: ConfidenceKeyword,
		}
	}
	if verb, rest := leadingPastTense(trimmed); verb != "" && rest != "" {
		return Intent{
			Action:     ActionComplete,
			TargetTask: rest,
			Confidence: ConfidencePastTense,
		}
	}

	// 2. Deletion.
	if firstContainedPhrase(lowered, deletionKeywords) != "" {
		return Intent{
			Action:     ActionDelete,
			TargetTask: extractTarget(trimmed, lowered, []*regexp.Regexp{deleteTargetRe}),
			Confidence: ConfidenceKeyword,
		}
	}

	// 3. Update: "<verb> <target> to <newText>" template, or trigger keyword
	// alone (ambiguous, low confidence, no target).
	if m := updateTemplateRe.FindStringSubmatch(trimmed); m != nil {
		return Intent{
			Action:     ActionUpdate,
			TargetTask: strings.TrimSpace(m[1]),
			NewText:    strings.TrimSpace(m[2]),
			Confidence: ConfidenceKeyword,
		}
	}
	if firstContainedPhrase(lowered, updateKeywords) != "" {
		return Intent{Action: ActionUpdate, Confidence: ConfidenceAmbiguousUpdate}
	}

	// 4. List.
	if firstContainedPhrase(lowered, listKeywords) != "" || exactToken(lowered, listTokens) {
		return Intent{Action: ActionList, Confidence: ConfidenceKeyword}
	}

	// 5. Creation: leading verb stripped, remainder is the task text.
	if m := creationVerbRe.FindStringSubmatch(trimmed); m != nil {
		return Intent{
			Action:     ActionCreate,
			TaskText:   strings.TrimSpace(m[1]),
			Confidence: ConfidenceKeyword,
		}
	}

	// 6. Default: fail toward doing something useful. The whole utterance
	// becomes a new task.
	if len(trimmed) > minCommandLength {
		return Intent{
			Action:     ActionCreate,
			TaskText:   trimmed,
			Confidence: ConfidenceDefaultCreate,
		}
	}

	return Intent{Action: ActionUnclear, Confidence: ConfidenceUnclear}
}

// extractTarget pulls the target-task reference out of a completion/deletion
// command: an ordinal word wins, then the first matching regex template.
func extractTarget(original, lowered string, templates []*regexp.Regexp) string {
	for _, word := range strings.Fields(lowered) {
		if token, ok := ordinalTokens[strings.Trim(word, ".,!?")]; ok {
			return token
		}
	}

	for _, re := range templates {
		if m := re.FindStringSubmatch(original); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// leadingPastTense splits "bought milk" into ("bought", "milk").
func leadingPastTense(text string) (verb, rest string) {
	fields := strings.SplitN(text, " ", 2)
	if len(fields) < 2 {
		return "", ""
	}
	first := strings.ToLower(strings.Trim(fields[0], ".,!?"))
	for _, v := range pastTenseVerbs {
		if first == v {
			return v, strings.TrimSpace(fields[1])
		}
	}
	return "", ""
}

// firstContainedPhrase returns the first keyword phrase contained in the text
// on word boundaries, or "".
func firstContainedPhrase(lowered string, phrases []string) string {
	for _, p := range phrases {
		if containsPhrase(lowered, p) {
			return p
		}
	}
	return ""
}

// phraseRes is precompiled at init so concurrent Classify calls share it
// read-only.
var phraseRes = compilePhrases(completionKeywords, deletionKeywords, updateKeywords, listKeywords)

func compilePhrases(groups ...[]string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp)
	for _, g := range groups {
		for _, p := range g {
			out[p] = regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`)
		}
	}
	return out
}

func containsPhrase(lowered, phrase string) bool {
	return phraseRes[phrase].MatchString(lowered)
}

// exactToken reports whether the trimmed text is exactly one of the tokens.
func exactToken(lowered string, tokens []string) bool {
	for _, t := range tokens {
		if lowered == t {
			return true
		}
	}
	return false
}

// StripCreationVerb removes a leading creation verb ("add buy milk" becomes
// "buy milk"). Text without one is returned unchanged.
func StripCreationVerb(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := creationVerbRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}
