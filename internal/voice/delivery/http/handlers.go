package http

import (
	"github.com/gin-gonic/gin"

	"voice-todo-assistant/pkg/response"
)

// ProcessCommand godoc
// @Summary     Process a voice or text command
// @Description Runs one command through transcription, intent classification
// @Description and the task store. Command-level failures (unclear input,
// @Description missing targets, store errors) are reported inside result with
// @Description success=false and still return 200.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body processCommandReq true "Command payload (text or base64 audio)"
// @Success     200 {object} processCommandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/command [POST]
func (h *handler) ProcessCommand(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessCommand(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessCommand: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProcessCommandResp(output))
}

// Transcribe godoc
// @Summary     Transcribe audio
// @Description Transcribes a base64 audio payload without classifying or
// @Description executing it.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body transcribeReq true "Audio payload"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Transcription Failed"
// @Router      /api/v1/voice/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscribeRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Transcribe(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTranscribeResp(output))
}
