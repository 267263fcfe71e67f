package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itseyans/ruric/internal/app"
	"github.com/itseyans/ruric/internal/transport/http/response"
)

// RelayHandler fronts the human-to-human message flows.
type RelayHandler struct {
	relay *app.RelayService
}

type ClientSendRequest struct {
	EmployeeID uint   `json:"employee_id"`
	ClientID   uint   `json:"client_id"`
	Message    string `json:"message"`
}

type EmployeeReplyRequest struct {
	EmployeeID uint   `json:"employee_id"`
	ClientID   uint   `json:"client_id"`
	Message    string `json:"message"`
}

type AdminSendRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Message    string `json:"message"`
}

func NewRelayHandler(relay *app.RelayService) *RelayHandler {
	return &RelayHandler{relay: relay}
}

func (h *RelayHandler) ClientSend(c *gin.Context) {
	var req ClientSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "employee_id, client_id and message required")
		return
	}

	err := h.relay.ClientSend(c.Request.Context(), req.EmployeeID, req.ClientID, req.Message)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "employee_id, client_id and message required")
			return
		}
		internalError(c, "client send", err)
		return
	}

	response.Created(c, gin.H{"status": "Message delivered to employee inbox"})
}

func (h *RelayHandler) EmployeeReply(c *gin.Context) {
	var req EmployeeReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "employee_id, client_id and message required")
		return
	}

	err := h.relay.EmployeeReply(c.Request.Context(), req.EmployeeID, req.ClientID, req.Message)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "employee_id, client_id and message required")
			return
		}
		internalError(c, "employee reply", err)
		return
	}

	response.Created(c, gin.H{"status": "Message sent to client"})
}

func (h *RelayHandler) EmployeeAssignments(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}

	clients, err := h.relay.AssignedClients(employeeID)
	if err != nil {
		internalError(c, "list assignments", err)
		return
	}

	response.OK(c, clients)
}

func (h *RelayHandler) EmployeeTranscript(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}
	clientID, ok := uintParam(c, "client_id")
	if !ok {
		return
	}

	transcript, err := h.relay.EmployeeTranscript(employeeID, clientID)
	if err != nil {
		internalError(c, "employee transcript", err)
		return
	}

	response.OK(c, transcript)
}

func (h *RelayHandler) AdminTranscript(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}

	transcript, err := h.relay.AdminTranscript(employeeID)
	if err != nil {
		internalError(c, "admin transcript", err)
		return
	}

	response.OK(c, transcript)
}

func (h *RelayHandler) AdminSend(c *gin.Context) {
	var req AdminSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Employee ID and message required")
		return
	}

	err := h.relay.AdminSend(c.Request.Context(), req.EmployeeID, req.Message)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "Employee ID and message required")
			return
		}
		internalError(c, "admin send", err)
		return
	}

	response.Created(c, gin.H{"message": "Message sent successfully"})
}

func (h *RelayHandler) UnreadCount(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}

	count, err := h.relay.UnreadCount(c.Request.Context(), employeeID)
	if err != nil {
		internalError(c, "unread count", err)
		return
	}

	response.OK(c, gin.H{"employee_id": employeeID, "unread": count})
}

func (h *RelayHandler) ClearUnread(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}

	if err := h.relay.ClearUnread(c.Request.Context(), employeeID); err != nil {
		internalError(c, "clear unread", err)
		return
	}

	response.OK(c, gin.H{"employee_id": employeeID, "unread": 0})
}
