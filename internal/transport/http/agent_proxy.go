package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type interactRequest struct {
	Message string `json:"message"`
}

// agentInteract — POST /api/agent/interact: конверт с текстом уходит агенту,
// статус и тело агента возвращаются вызывающему.
// Тело без JSON (в том числе пустое) — такой же 500, как недоступный агент;
// пустое поле message заменяется текстом по умолчанию.
func (h *Handler) agentInteract(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req interactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf(ctx, "agent interact: bad request body: %v", err)
		h.agentUnavailable(c, err)
		return
	}

	reply, err := h.forwarder.Forward(ctx, req.Message)
	if err != nil {
		h.log.Errorf(ctx, "agent forward failed: %v", err)
		h.agentUnavailable(c, err)
		return
	}

	text := string(reply.Body)
	if !reply.OK() {
		h.log.Warnf(ctx, "agent responded status=%d", reply.StatusCode)
		c.JSON(reply.StatusCode, gin.H{
			"error":   "Agent request failed",
			"details": text,
			"status":  reply.StatusCode,
		})
		return
	}

	var agentResponse any
	if err := json.Unmarshal(reply.Body, &agentResponse); err != nil {
		agentResponse = gin.H{"message": text, "status": "sent"}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Message sent to agent successfully",
		"agent":         h.agentTarget,
		"agentResponse": agentResponse,
	})
}

func (h *Handler) agentUnavailable(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Failed to connect to agent",
		"message": err.Error(),
	})
}
