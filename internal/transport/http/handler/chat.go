package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itseyans/ruric/internal/app"
	"github.com/itseyans/ruric/internal/transport/http/response"
)

// ChatHandler fronts the client-AI chat flow and human escalation.
type ChatHandler struct {
	escalation *app.EscalationService
}

type ChatRequest struct {
	SenderID uint   `json:"sender_id"`
	Message  string `json:"message"`
}

type RequestHumanRequest struct {
	UserID uint `json:"user_id"`
}

func NewChatHandler(escalation *app.EscalationService) *ChatHandler {
	return &ChatHandler{escalation: escalation}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "sender_id and message required")
		return
	}

	result, err := h.escalation.Route(c.Request.Context(), req.SenderID, req.Message)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "sender_id and message required")
			return
		}
		internalError(c, "chat", err)
		return
	}

	response.OK(c, gin.H{
		"response":     result.Reply,
		"human_needed": result.HumanNeeded,
	})
}

func (h *ChatHandler) RequestHuman(c *gin.Context) {
	var req RequestHumanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "user_id required")
		return
	}

	assignment, err := h.escalation.RequestHuman(c.Request.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "user_id required")
		case errors.Is(err, app.ErrNoEmployeeAvailable):
			response.Error(c, http.StatusInternalServerError, "No employees available")
		default:
			internalError(c, "request human", err)
		}
		return
	}

	response.OK(c, gin.H{
		"assigned_employee": assignment.EmployeeID,
		"assigned_name":     assignment.EmployeeName,
	})
}

func (h *ChatHandler) GetAssignment(c *gin.Context) {
	clientID, ok := uintParam(c, "client_id")
	if !ok {
		return
	}

	assignment, err := h.escalation.AssignmentFor(clientID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "invalid client id")
		case errors.Is(err, app.ErrAssignmentNotFound):
			response.Error(c, http.StatusNotFound, "No assignment found")
		default:
			internalError(c, "get assignment", err)
		}
		return
	}

	response.OK(c, gin.H{
		"employee_name": assignment.EmployeeName,
		"employee_id":   assignment.EmployeeID,
	})
}
