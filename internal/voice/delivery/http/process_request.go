package http

import (
	"github.com/gin-gonic/gin"
)

// processCommandRequest binds and validates the voice command request body.
func (h *handler) processCommandRequest(c *gin.Context) (processCommandReq, error) {
	var req processCommandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTranscribeRequest binds the bare transcription request body.
func (h *handler) processTranscribeRequest(c *gin.Context) (transcribeReq, error) {
	var req transcribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
