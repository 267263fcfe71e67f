package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itseyans/ruric/internal/app"
	"github.com/itseyans/ruric/internal/model"
	"github.com/itseyans/ruric/internal/transport/http/response"
)

// DirectoryHandler fronts attendance, products and the admin dashboard.
type DirectoryHandler struct {
	directory *app.DirectoryService
}

type MarkAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Status     string `json:"status"`
}

func NewDirectoryHandler(directory *app.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Employee ID required")
		return
	}

	record, err := h.directory.MarkAttendance(req.EmployeeID, req.Status)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "Employee ID required")
			return
		}
		internalError(c, "mark attendance", err)
		return
	}

	response.Created(c, gin.H{
		"message": fmt.Sprintf("Attendance marked as %s for today.", record.Status),
	})
}

func (h *DirectoryHandler) AttendanceRecords(c *gin.Context) {
	employeeID, ok := uintParam(c, "employee_id")
	if !ok {
		return
	}

	records, err := h.directory.AttendanceFor(employeeID)
	if err != nil {
		internalError(c, "list attendance", err)
		return
	}

	response.OK(c, records)
}

func (h *DirectoryHandler) AdminSummary(c *gin.Context) {
	summary, err := h.directory.Summary()
	if err != nil {
		internalError(c, "admin summary", err)
		return
	}

	response.OK(c, summary)
}

func (h *DirectoryHandler) AdminEmployees(c *gin.Context) {
	employees, err := h.directory.Employees()
	if err != nil {
		internalError(c, "list employees", err)
		return
	}

	out := make([]gin.H, 0, len(employees))
	for _, e := range employees {
		out = append(out, gin.H{
			"user_id":   e.ID,
			"full_name": e.FullName,
			"email":     e.Email,
		})
	}
	response.OK(c, out)
}

func (h *DirectoryHandler) EmployeeRatings(c *gin.Context) {
	response.OK(c, h.directory.Ratings())
}

func (h *DirectoryHandler) Products(c *gin.Context) {
	products, err := h.directory.Products()
	if err != nil {
		internalError(c, "list products", err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	response.OK(c, products)
}
