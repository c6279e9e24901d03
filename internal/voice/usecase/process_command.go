package usecase

import (
	"context"
	"strings"

	"voice-todo-assistant/internal/intent"
	"voice-todo-assistant/internal/voice"
)

// ProcessCommand runs one command through the full pipeline: transcribe when
// the input is audio, classify, execute against the task store, and
// optionally synthesize the reply. Everything a user can cause (empty input,
// ambiguous commands, store failures) is reported inside the CommandResult;
// the error return is reserved for programming errors.
func (uc *implUseCase) ProcessCommand(ctx context.Context, input voice.ProcessCommandInput) (voice.ProcessCommandOutput, error) {
	var out voice.ProcessCommandOutput

	text := strings.TrimSpace(input.Text)
	if text == "" && input.Audio != nil && len(input.Audio.Data) > 0 {
		transcript, err := uc.transcribeAudio(ctx, *input.Audio)
		if err != nil {
			uc.l.Errorf(ctx, "voice.usecase.ProcessCommand.transcribe: %v", err)
			out.Result = failure(msgAudioFailed)
			return uc.respond(ctx, input, out), nil
		}
		text = strings.TrimSpace(transcript.Text)
		out.Transcript = text
	}

	if text == "" {
		out.Result = failure(msgNoCommand)
		return uc.respond(ctx, input, out), nil
	}
	out.Transcript = text

	it := uc.classifier.Classify(ctx, text, intent.Context{CurrentListID: input.ListID})
	out.Intent = it

	// Unclear commands never reach the store.
	if it.Action == intent.ActionUnclear {
		out.Result = failure(msgUnclear)
		return uc.respond(ctx, input, out), nil
	}

	if _, err := uc.repo.EnsureCollection(ctx); err != nil {
		uc.l.Errorf(ctx, "voice.usecase.ProcessCommand.EnsureCollection: %v", err)
		out.Result = failure(msgCollectionFailed)
		return uc.respond(ctx, input, out), nil
	}

	out.Result = uc.execute(ctx, it, text)
	return uc.respond(ctx, input, out), nil
}

// respond attaches a spoken reply when one was requested. Synthesis failures
// degrade to a text-only response.
func (uc *implUseCase) respond(ctx context.Context, input voice.ProcessCommandInput, out voice.ProcessCommandOutput) voice.ProcessCommandOutput {
	if !input.ReturnAudio || uc.synthesizer == nil || out.Result.Message == "" {
		return out
	}

	speech, err := uc.synthesizer.Synthesize(ctx, voice.SynthesisInput{
		Text:    out.Result.Message,
		VoiceID: input.VoiceID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "voice.usecase.respond.Synthesize: %v", err)
		return out
	}

	out.Speech = &speech
	return out
}

func failure(message string) voice.CommandResult {
	return voice.CommandResult{Success: false, Message: message}
}
