package http

import (
	"encoding/base64"
	"errors"
	"time"

	"voice-todo-assistant/internal/model"
	"voice-todo-assistant/internal/voice"
)

var (
	errMissingCommand = errors.New("text or audioBase64 is required")
	errBadAudio       = errors.New("audioBase64 is not valid base64")
)

// --- Request DTOs ---

type processCommandReq struct {
	Text        string `json:"text"`
	AudioBase64 string `json:"audioBase64"`
	MIMEType    string `json:"mimeType"`
	Language    string `json:"language"`
	ReturnAudio bool   `json:"returnAudio"`
	VoiceID     string `json:"voiceId"`
}

func (r processCommandReq) validate() error {
	if r.Text == "" && r.AudioBase64 == "" {
		return errMissingCommand
	}
	return nil
}

func (r processCommandReq) toInput() (voice.ProcessCommandInput, error) {
	input := voice.ProcessCommandInput{
		Text:        r.Text,
		ReturnAudio: r.ReturnAudio,
		VoiceID:     r.VoiceID,
	}

	if r.AudioBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(r.AudioBase64)
		if err != nil {
			return input, errBadAudio
		}
		input.Audio = &voice.AudioInput{
			Data:     data,
			MIMEType: r.MIMEType,
			Language: r.Language,
		}
	}
	return input, nil
}

type transcribeReq struct {
	AudioBase64 string `json:"audioBase64" binding:"required"`
	MIMEType    string `json:"mimeType"`
	Language    string `json:"language"`
}

func (r transcribeReq) toInput() (voice.TranscribeInput, error) {
	data, err := base64.StdEncoding.DecodeString(r.AudioBase64)
	if err != nil {
		return voice.TranscribeInput{}, errBadAudio
	}
	return voice.TranscribeInput{
		Audio: voice.AudioInput{
			Data:     data,
			MIMEType: r.MIMEType,
			Language: r.Language,
		},
	}, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	DueAt    string `json:"dueAt,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:       t.ID,
		Text:     t.Text,
		Status:   string(t.Status),
		Priority: string(t.Priority),
		Category: string(t.Category),
	}
	if !t.DueAt.IsZero() {
		resp.DueAt = t.DueAt.Format(time.RFC3339)
	}
	return resp
}

type commandResultResp struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	TaskID  string     `json:"taskId,omitempty"`
	Tasks   []taskResp `json:"tasks,omitempty"`
}

type processCommandResp struct {
	Success             bool              `json:"success"`
	TranscribedText     string            `json:"transcribedText"`
	Intent              string            `json:"intent"`
	Result              commandResultResp `json:"result"`
	AudioResponseBase64 string            `json:"audioResponseBase64,omitempty"`
	AudioMIMEType       string            `json:"audioMimeType,omitempty"`
}

func (h *handler) newProcessCommandResp(output voice.ProcessCommandOutput) processCommandResp {
	result := commandResultResp{
		Success: output.Result.Success,
		Message: output.Result.Message,
		TaskID:  output.Result.TaskID,
	}
	for _, t := range output.Result.Tasks {
		result.Tasks = append(result.Tasks, newTaskResp(t))
	}

	resp := processCommandResp{
		Success:         true,
		TranscribedText: output.Transcript,
		Intent:          string(output.Intent.Action),
		Result:          result,
	}
	if output.Speech != nil {
		resp.AudioResponseBase64 = base64.StdEncoding.EncodeToString(output.Speech.Audio)
		resp.AudioMIMEType = output.Speech.MIMEType
	}
	return resp
}

type transcribeResp struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language,omitempty"`
}

func (h *handler) newTranscribeResp(output voice.TranscribeOutput) transcribeResp {
	return transcribeResp{
		Text:       output.Text,
		Confidence: output.Confidence,
		Language:   output.Language,
	}
}
