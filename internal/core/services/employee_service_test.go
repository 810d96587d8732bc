package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	"github.com/hospitaldms/duty_scheduler/internal/core/domain"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/core/services"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeDetails(ctx context.Context, employeeID int64) (*domain.EmployeeDetails, error) {
	args := m.Called(ctx, employeeID)
	var details *domain.EmployeeDetails
	if args.Get(0) != nil {
		details = args.Get(0).(*domain.EmployeeDetails)
	}
	return details, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.EmployeeSummary, error) {
	args := m.Called(ctx)
	var employees []domain.EmployeeSummary
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.EmployeeSummary)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) FindAvailableEmployees(ctx context.Context, date time.Time) ([]domain.EmployeeRef, error) {
	args := m.Called(ctx, date)
	var refs []domain.EmployeeRef
	if args.Get(0) != nil {
		refs = args.Get(0).([]domain.EmployeeRef)
	}
	return refs, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, name, position string, departmentID int64) (int64, error) {
	args := m.Called(ctx, name, position, departmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByName(ctx context.Context, name string) (*domain.EmployeeCredential, error) {
	args := m.Called(ctx, name)
	var cred *domain.EmployeeCredential
	if args.Get(0) != nil {
		cred = args.Get(0).(*domain.EmployeeCredential)
	}
	return cred, args.Error(1)
}

// --- Mock OrgRepository ---
type MockOrgRepository struct {
	mock.Mock
}

func (m *MockOrgRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	var departments []domain.Department
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.Department)
	}
	return departments, args.Error(1)
}

func (m *MockOrgRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	args := m.Called(ctx, name)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockOrgRepository) FindBuildings(ctx context.Context) ([]domain.Building, error) {
	args := m.Called(ctx)
	var buildings []domain.Building
	if args.Get(0) != nil {
		buildings = args.Get(0).([]domain.Building)
	}
	return buildings, args.Error(1)
}

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockOrgRepo      *MockOrgRepository
	service          portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockOrgRepo = new(MockOrgRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo, suite.mockOrgRepo)
}

// --- CreateEmployee Tests ---
func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:           "Anna Petrova",
		Position:       "Surgeon",
		DepartmentName: "Cardiology",
	}
	department := &domain.Department{ID: 3, Name: "Cardiology", BuildingID: 1}

	suite.mockOrgRepo.On("FindDepartmentByName", ctx, "Cardiology").Return(department, nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, "Anna Petrova", "Surgeon", int64(3)).Return(int64(42), nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(42), created.ID)
	suite.Equal("Anna Petrova", created.Name)
	suite.Equal("Surgeon", created.Position)
	suite.Equal(int64(3), created.DepartmentID)

	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_TrimsFields() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:           "  Anna Petrova  ",
		Position:       " Surgeon ",
		DepartmentName: " Cardiology ",
	}
	department := &domain.Department{ID: 3, Name: "Cardiology", BuildingID: 1}

	suite.mockOrgRepo.On("FindDepartmentByName", ctx, "Cardiology").Return(department, nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, "Anna Petrova", "Surgeon", int64(3)).Return(int64(7), nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Anna Petrova", created.Name)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_BlankFields() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:           "   ",
		Position:       "Surgeon",
		DepartmentName: "Cardiology",
	}

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindDepartmentByName")
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DepartmentNotFound() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:           "Anna Petrova",
		Position:       "Surgeon",
		DepartmentName: "Telepathy",
	}

	suite.mockOrgRepo.On("FindDepartmentByName", ctx, "Telepathy").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee")
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_SaveError() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:           "Anna Petrova",
		Position:       "Surgeon",
		DepartmentName: "Cardiology",
	}
	department := &domain.Department{ID: 3, Name: "Cardiology", BuildingID: 1}
	expectedErr := assert.AnError

	suite.mockOrgRepo.On("FindDepartmentByName", ctx, "Cardiology").Return(department, nil).Once()
	suite.mockEmployeeRepo.On("SaveEmployee", ctx, "Anna Petrova", "Surgeon", int64(3)).Return(int64(0), expectedErr).Once()

	created, err := suite.service.CreateEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
}

// --- GetEmployeeDetails Tests ---
func (suite *EmployeeServiceTestSuite) TestGetEmployeeDetails_Success() {
	ctx := context.Background()
	expected := &domain.EmployeeDetails{
		Name:           "Anna Petrova",
		Position:       "Surgeon",
		DepartmentName: "Cardiology",
		ShiftCount:     4,
	}

	suite.mockEmployeeRepo.On("FindEmployeeDetails", ctx, int64(42)).Return(expected, nil).Once()

	details, err := suite.service.GetEmployeeDetails(ctx, int64(42))

	suite.Require().NoError(err)
	suite.Equal(expected, details)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestGetEmployeeDetails_NotFound() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeDetails", ctx, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.GetEmployeeDetails(ctx, int64(999))

	suite.Require().Error(err)
	suite.Nil(details)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListEmployees Tests ---
func (suite *EmployeeServiceTestSuite) TestListEmployees_Success() {
	ctx := context.Background()
	expected := []domain.EmployeeSummary{
		{ID: 1, Name: "Anna Petrova", Position: "Surgeon", DepartmentName: "Cardiology", ShiftCount: 2},
		{ID: 2, Name: "Boris Ivanov", Position: "Nurse", DepartmentName: "Therapy", ShiftCount: 0},
	}

	suite.mockEmployeeRepo.On("FindEmployees", ctx).Return(expected, nil).Once()

	employees, err := suite.service.ListEmployees(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, employees)
}

// --- ListAvailableEmployees Tests ---
func (suite *EmployeeServiceTestSuite) TestListAvailableEmployees_Success() {
	ctx := context.Background()
	date := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	expected := []domain.EmployeeRef{
		{ID: 2, Name: "Boris Ivanov"},
	}

	suite.mockEmployeeRepo.On("FindAvailableEmployees", ctx, date).Return(expected, nil).Once()

	refs, err := suite.service.ListAvailableEmployees(ctx, date)

	suite.Require().NoError(err)
	suite.Equal(expected, refs)
}

// --- Org unit Tests ---
func (suite *EmployeeServiceTestSuite) TestListDepartments_Success() {
	ctx := context.Background()
	expected := []domain.Department{
		{ID: 3, Name: "Cardiology", BuildingID: 1},
		{ID: 5, Name: "Therapy", BuildingID: 2},
	}

	suite.mockOrgRepo.On("FindDepartments", ctx).Return(expected, nil).Once()

	departments, err := suite.service.ListDepartments(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, departments)
}

func (suite *EmployeeServiceTestSuite) TestListBuildings_Error() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockOrgRepo.On("FindBuildings", ctx).Return(nil, expectedErr).Once()

	buildings, err := suite.service.ListBuildings(ctx)

	suite.Require().Error(err)
	suite.Nil(buildings)
	suite.ErrorIs(err, expectedErr)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
