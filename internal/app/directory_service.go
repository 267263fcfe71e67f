package app

import (
	"strings"
	"time"

	"github.com/itseyans/ruric/internal/model"
	"github.com/itseyans/ruric/internal/repository"
)

// DirectoryService covers the plain CRUD surfaces around the chat core:
// attendance, products and the admin dashboard.
type DirectoryService struct {
	users      *repository.UserRepository
	attendance *repository.AttendanceRepository
	products   *repository.ProductRepository
	orders     *repository.OrderRepository
}

type AdminSummary struct {
	Employees    int64 `json:"employees"`
	Clients      int64 `json:"clients"`
	Orders       int64 `json:"orders"`
	PresentToday int64 `json:"present_today"`
}

type EmployeeRating struct {
	Employee string  `json:"employee"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
}

func NewDirectoryService(
	users *repository.UserRepository,
	attendance *repository.AttendanceRepository,
	products *repository.ProductRepository,
	orders *repository.OrderRepository,
) *DirectoryService {
	return &DirectoryService{
		users:      users,
		attendance: attendance,
		products:   products,
		orders:     orders,
	}
}

func (s *DirectoryService) MarkAttendance(employeeID uint, status string) (*model.Attendance, error) {
	if employeeID == 0 {
		return nil, ErrInvalidInput
	}
	status = strings.TrimSpace(status)
	if status == "" {
		status = "Present"
	}

	now := time.Now()
	record := &model.Attendance{
		EmployeeID: employeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		TimeIn:     &now,
		Status:     status,
	}
	if err := s.attendance.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *DirectoryService) AttendanceFor(employeeID uint) ([]model.Attendance, error) {
	if employeeID == 0 {
		return nil, ErrInvalidInput
	}
	return s.attendance.ListByEmployee(employeeID)
}

func (s *DirectoryService) Summary() (*AdminSummary, error) {
	employees, err := s.users.CountByRole(model.RoleEmployee)
	if err != nil {
		return nil, err
	}
	clients, err := s.users.CountByRole(model.RoleClient)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count()
	if err != nil {
		return nil, err
	}
	presentToday, err := s.attendance.CountPresentToday()
	if err != nil {
		return nil, err
	}

	return &AdminSummary{
		Employees:    employees,
		Clients:      clients,
		Orders:       orders,
		PresentToday: presentToday,
	}, nil
}

func (s *DirectoryService) Employees() ([]model.User, error) {
	return s.users.ListByRole(model.RoleEmployee)
}

// Ratings is a static showcase list, same as the storefront has always
// displayed.
func (s *DirectoryService) Ratings() []EmployeeRating {
	return []EmployeeRating{
		{Employee: "Alice Reyes", Rating: 4.8, Reviews: 35},
		{Employee: "Ben Cruz", Rating: 4.6, Reviews: 29},
		{Employee: "Ruri AI", Rating: 4.9, Reviews: 50},
	}
}

func (s *DirectoryService) Products() ([]model.Product, error) {
	return s.products.ListNewestFirst()
}
