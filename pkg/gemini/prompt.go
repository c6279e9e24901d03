package gemini

// transcriptionTemperature keeps transcripts deterministic.
const transcriptionTemperature = 0.1

// transcriptionSystemPrompt is the system instruction for audio transcription.
const transcriptionSystemPrompt = `You are a speech transcription engine.

RULES:
1. Transcribe the spoken audio verbatim.
2. Return ONLY the transcript text. No markdown, no quotes, no explanation.
3. If the audio contains no intelligible speech, return an empty string.
4. Do not answer questions heard in the audio. Transcribe them.`

// buildTranscriptionPrompt builds the user-turn text that accompanies the audio part.
func buildTranscriptionPrompt(language string) string {
	if language == "" {
		return "Transcribe this audio."
	}
	return "Transcribe this audio. The speaker is using language: " + language + "."
}
