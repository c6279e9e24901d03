package ws

import (
	"encoding/base64"

	"voice-todo-assistant/internal/voice"
)

type taskFrame struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

type resultFrame struct {
	Type                string      `json:"type"`
	TranscribedText     string      `json:"transcribedText"`
	Intent              string      `json:"intent"`
	Success             bool        `json:"success"`
	Message             string      `json:"message"`
	TaskID              string      `json:"taskId,omitempty"`
	Tasks               []taskFrame `json:"tasks,omitempty"`
	AudioResponseBase64 string      `json:"audioResponseBase64,omitempty"`
	AudioMIMEType       string      `json:"audioMimeType,omitempty"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newResultFrame(output voice.ProcessCommandOutput) resultFrame {
	frame := resultFrame{
		Type:            frameResult,
		TranscribedText: output.Transcript,
		Intent:          string(output.Intent.Action),
		Success:         output.Result.Success,
		Message:         output.Result.Message,
		TaskID:          output.Result.TaskID,
	}
	for _, t := range output.Result.Tasks {
		frame.Tasks = append(frame.Tasks, taskFrame{ID: t.ID, Text: t.Text, Status: string(t.Status)})
	}
	if output.Speech != nil {
		frame.AudioResponseBase64 = base64.StdEncoding.EncodeToString(output.Speech.Audio)
		frame.AudioMIMEType = output.Speech.MIMEType
	}
	return frame
}
