package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"voice-todo-assistant/internal/intent"
	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/internal/task/repository"
	"voice-todo-assistant/internal/voice"
)

func TestProcessCommandCreate(t *testing.T) {
	repo := &fakeRepo{}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "add buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Transcript != "add buy milk" {
		t.Errorf("transcript = %q", out.Transcript)
	}
	if out.Intent.Action != intent.ActionCreate {
		t.Errorf("action = %s, want create", out.Intent.Action)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}
	if want := `Added "buy milk" to your tasks`; out.Result.Message != want {
		t.Errorf("message = %q, want %q", out.Result.Message, want)
	}
	if out.Result.TaskID != "task-1" {
		t.Errorf("task id = %q", out.Result.TaskID)
	}
	if len(repo.created) != 1 || repo.created[0].Text != "buy milk" {
		t.Errorf("created = %+v", repo.created)
	}
}

func TestProcessCommandCompletePastTense(t *testing.T) {
	repo := &fakeRepo{
		findResult:     model.Task{ID: "t1", Text: "buy milk", Status: model.StatusTodo},
		completeResult: model.Task{ID: "t1", Text: "buy milk", Status: model.StatusDone},
	}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "bought milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}
	if len(repo.titleQueries) != 1 || repo.titleQueries[0] != "milk" {
		t.Errorf("title queries = %v", repo.titleQueries)
	}
	if len(repo.completedIDs) != 1 || repo.completedIDs[0] != "t1" {
		t.Errorf("completed ids = %v", repo.completedIDs)
	}
	if want := `Completed "buy milk"`; out.Result.Message != want {
		t.Errorf("message = %q, want %q", out.Result.Message, want)
	}
}

func TestProcessCommandCompleteByPosition(t *testing.T) {
	repo := &fakeRepo{
		findResult:     model.Task{ID: "t2", Text: "walk dog"},
		completeResult: model.Task{ID: "t2", Text: "walk dog", Status: model.StatusDone},
	}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "complete first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}
	if len(repo.positionQueries) != 1 || repo.positionQueries[0] != "first" {
		t.Errorf("position queries = %v", repo.positionQueries)
	}
	if len(repo.titleQueries) != 0 {
		t.Errorf("unexpected fuzzy lookups: %v", repo.titleQueries)
	}
}

func TestProcessCommandCompleteMissingTarget(t *testing.T) {
	repo := &fakeRepo{}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Success {
		t.Fatal("expected clarification, got success")
	}
	if out.Result.Message != msgClarifyComplete {
		t.Errorf("message = %q", out.Result.Message)
	}
	if len(repo.titleQueries)+len(repo.positionQueries)+len(repo.completedIDs) != 0 {
		t.Error("store lookups made despite missing target")
	}
}

func TestProcessCommandDeleteAll(t *testing.T) {
	repo := &fakeRepo{deleteAllCount: 3}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "delete all"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}
	if repo.deleteAllCalls != 1 {
		t.Errorf("DeleteAll calls = %d", repo.deleteAllCalls)
	}
	if want := "Deleted 3 tasks"; out.Result.Message != want {
		t.Errorf("message = %q, want %q", out.Result.Message, want)
	}
}

func TestProcessCommandUnclear(t *testing.T) {
	repo := &fakeRepo{}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent.Action != intent.ActionUnclear {
		t.Errorf("action = %s, want unclear", out.Intent.Action)
	}
	if out.Result.Success {
		t.Fatal("expected failure result")
	}
	if out.Result.Message != msgUnclear {
		t.Errorf("message = %q", out.Result.Message)
	}
	if repo.ensureCalls != 0 {
		t.Error("store touched for an unclear command")
	}
}

func TestProcessCommandEmptyInput(t *testing.T) {
	repo := &fakeRepo{}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Success || out.Result.Message != msgNoCommand {
		t.Errorf("result = %+v", out.Result)
	}
	if repo.ensureCalls != 0 {
		t.Error("store touched for empty input")
	}
}

func TestProcessCommandAudio(t *testing.T) {
	repo := &fakeRepo{}
	classifier := intent.New(mockLogger{}, nil, intent.Config{})
	tr := &fakeTranscriber{transcript: voice.Transcript{Text: "add buy milk", Confidence: 0.95}}
	uc := New(mockLogger{}, repo, classifier, tr, nil, nil, Config{})

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{
		Audio: &voice.AudioInput{Data: []byte("riff"), MIMEType: "audio/wav", Language: "en"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.calls != 1 || tr.gotAudio.MIMEType != "audio/wav" {
		t.Errorf("transcriber calls = %d, audio = %+v", tr.calls, tr.gotAudio)
	}
	if out.Transcript != "add buy milk" {
		t.Errorf("transcript = %q", out.Transcript)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}
	if len(repo.created) != 1 {
		t.Errorf("created = %+v", repo.created)
	}
}

func TestProcessCommandAudioFailure(t *testing.T) {
	repo := &fakeRepo{}
	classifier := intent.New(mockLogger{}, nil, intent.Config{})
	tr := &fakeTranscriber{err: voice.ErrTranscription}
	uc := New(mockLogger{}, repo, classifier, tr, nil, nil, Config{})

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{
		Audio: &voice.AudioInput{Data: []byte("riff"), MIMEType: "audio/wav"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Success || out.Result.Message != msgAudioFailed {
		t.Errorf("result = %+v", out.Result)
	}
	if repo.ensureCalls != 0 {
		t.Error("store touched after a failed transcription")
	}
}

func TestProcessCommandAudioEmptyTranscript(t *testing.T) {
	repo := &fakeRepo{}
	classifier := intent.New(mockLogger{}, nil, intent.Config{})
	tr := &fakeTranscriber{transcript: voice.Transcript{Text: "   "}}
	uc := New(mockLogger{}, repo, classifier, tr, nil, nil, Config{})

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{
		Audio: &voice.AudioInput{Data: []byte("riff"), MIMEType: "audio/wav"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Success || out.Result.Message != msgNoCommand {
		t.Errorf("result = %+v", out.Result)
	}
}

func TestProcessCommandStoreFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("notion: 503")}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "add buy milk"})
	if err != nil {
		t.Fatalf("store failures must not surface as errors, got %v", err)
	}
	if out.Result.Success || out.Result.Message != msgCreateFailed {
		t.Errorf("result = %+v", out.Result)
	}
}

func TestProcessCommandCollectionFailure(t *testing.T) {
	repo := &fakeRepo{ensureErr: repository.ErrCollectionUnavailable}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "add buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Success || out.Result.Message != msgCollectionFailed {
		t.Errorf("result = %+v", out.Result)
	}
	if len(repo.created) != 0 {
		t.Error("create attempted without a collection")
	}
}

func TestProcessCommandTargetNotFound(t *testing.T) {
	repo := &fakeRepo{findErr: repository.ErrTaskNotFound}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "complete the laundry"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Success {
		t.Fatal("expected failure result")
	}
	if want := `I couldn't find a task matching "the laundry"`; out.Result.Message != want {
		t.Errorf("message = %q, want %q", out.Result.Message, want)
	}
	if len(repo.completedIDs) != 0 {
		t.Error("complete attempted on an unresolved target")
	}
}

func TestProcessCommandUpdate(t *testing.T) {
	repo := &fakeRepo{
		findResult:   model.Task{ID: "t1", Text: "buy milk"},
		updateResult: model.Task{ID: "t1", Text: "oat milk"},
	}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "change milk to oat milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}
	if len(repo.updatedTexts) != 1 || repo.updatedTexts[0] != "oat milk" {
		t.Errorf("updated texts = %v", repo.updatedTexts)
	}
	if want := `Updated "buy milk" to "oat milk"`; out.Result.Message != want {
		t.Errorf("message = %q, want %q", out.Result.Message, want)
	}
}

func TestProcessCommandList(t *testing.T) {
	repo := &fakeRepo{listResult: []model.Task{
		{ID: "t1", Text: "buy milk", Status: model.StatusTodo},
		{ID: "t2", Text: "walk dog", Status: model.StatusDone},
	}}
	uc := newRulesUseCase(repo)

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "show my tasks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}
	if len(out.Result.Tasks) != 2 {
		t.Errorf("tasks = %+v", out.Result.Tasks)
	}
	if want := "You have 2 tasks: 1. buy milk; 2. walk dog (done)"; out.Result.Message != want {
		t.Errorf("message = %q, want %q", out.Result.Message, want)
	}
}

func TestProcessCommandSpeech(t *testing.T) {
	repo := &fakeRepo{}
	classifier := intent.New(mockLogger{}, nil, intent.Config{})
	syn := &fakeSynthesizer{out: voice.SynthesisOutput{Audio: []byte("mp3"), MIMEType: "audio/mpeg"}}
	uc := New(mockLogger{}, repo, classifier, nil, syn, nil, Config{})

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{
		Text:        "add buy milk",
		ReturnAudio: true,
		VoiceID:     "voice-7",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Speech == nil || out.Speech.MIMEType != "audio/mpeg" {
		t.Fatalf("speech = %+v", out.Speech)
	}
	if syn.gotInput.Text != out.Result.Message {
		t.Errorf("synthesized %q, result message %q", syn.gotInput.Text, out.Result.Message)
	}
	if syn.gotInput.VoiceID != "voice-7" {
		t.Errorf("voice id = %q", syn.gotInput.VoiceID)
	}
}

func TestProcessCommandSpeechFailureDegrades(t *testing.T) {
	repo := &fakeRepo{}
	classifier := intent.New(mockLogger{}, nil, intent.Config{})
	syn := &fakeSynthesizer{err: errors.New("elevenlabs: 429")}
	uc := New(mockLogger{}, repo, classifier, nil, syn, nil, Config{})

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{
		Text:        "add buy milk",
		ReturnAudio: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Speech != nil {
		t.Error("speech present despite synthesis failure")
	}
	if !out.Result.Success {
		t.Errorf("text result lost: %+v", out.Result)
	}
}

func TestProcessCommandDueReminder(t *testing.T) {
	repo := &fakeRepo{}
	classifier := &fakeClassifier{result: intent.Intent{
		Action:     intent.ActionCreate,
		TaskText:   "buy milk",
		DuePhrase:  "tomorrow",
		Confidence: 0.9,
	}}
	cal := &fakeCalendar{}
	uc := New(mockLogger{}, repo, classifier, nil, nil, cal, Config{Timezone: "UTC", CalendarID: "primary"})
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) }

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "add buy milk tomorrow"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.Success {
		t.Fatalf("result not successful: %+v", out.Result)
	}

	wantDue := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if len(repo.created) != 1 || !repo.created[0].DueAt.Equal(wantDue) {
		t.Errorf("created = %+v, want due %s", repo.created, wantDue)
	}
	if len(cal.requests) != 1 {
		t.Fatalf("calendar requests = %+v", cal.requests)
	}
	req := cal.requests[0]
	if req.Summary != "Todo: buy milk" {
		t.Errorf("summary = %q", req.Summary)
	}
	if want := wantDue.Add(9 * time.Hour); !req.StartTime.Equal(want) {
		t.Errorf("start = %s, want %s", req.StartTime, want)
	}
}

func TestProcessCommandReminderFailureIgnored(t *testing.T) {
	repo := &fakeRepo{}
	classifier := &fakeClassifier{result: intent.Intent{
		Action:    intent.ActionCreate,
		TaskText:  "buy milk",
		DuePhrase: "tomorrow",
	}}
	cal := &fakeCalendar{err: errors.New("calendar: quota")}
	uc := New(mockLogger{}, repo, classifier, nil, nil, cal, Config{Timezone: "UTC"})

	out, err := uc.ProcessCommand(context.Background(), voice.ProcessCommandInput{Text: "add buy milk tomorrow"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.Success {
		t.Errorf("calendar failure leaked into the result: %+v", out.Result)
	}
}
