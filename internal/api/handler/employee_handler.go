package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

type EmployeeHandler struct {
	resources ports.ResourceService
	baseURL   string
}

func NewEmployeeHandler(resources ports.ResourceService, baseURL string) *EmployeeHandler {
	return &EmployeeHandler{resources: resources, baseURL: strings.TrimRight(baseURL, "/")}
}

type employeeLinks struct {
	Self      string `json:"self"`
	Pay       string `json:"pay"`
	Benefits  string `json:"benefits"`
	Time      string `json:"time"`
	Documents string `json:"documents,omitempty"`
}

type employeeResponse struct {
	domain.Employee
	Links employeeLinks `json:"_links"`
}

type employeeListResponse struct {
	Count      int64              `json:"count"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
	Employees  []employeeResponse `json:"employees"`
}

type benefitsResponse struct {
	EmployeeID string           `json:"employee_id"`
	Benefits   []domain.Benefit `json:"benefits"`
}

type timeEntriesResponse struct {
	EmployeeID  string             `json:"employee_id"`
	TimeEntries []domain.TimeEntry `json:"time_entries"`
}

type documentsResponse struct {
	EmployeeID string           `json:"employee_id"`
	Documents  []ports.Document `json:"documents"`
}

func (h *EmployeeHandler) links(companyID, employeeID string, detail bool) employeeLinks {
	base := h.baseURL + "/ta/rest/v2/companies/" + companyID + "/employees/" + employeeID
	l := employeeLinks{
		Self:     base,
		Pay:      base + "/pay",
		Benefits: base + "/benefits",
		Time:     base + "/time",
	}
	if detail {
		l.Documents = base + "/documents"
	}
	return l
}

// queryInt parses an optional integer query parameter; garbage reads as 0 and
// is clamped by the service.
func queryInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.QueryParam(name))
	return n
}

// List returns one page of the tenant's employees.
//
// @Summary      List employees
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        companyId  path      string  true   "Company id"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        per_page   query     int     false  "Page size, max 100"
// @Param        status     query     string  false  "Employment status"
// @Param        location   query     string  false  "Location name"
// @Success      200        {object}  employeeListResponse
// @Failure      401        {object}  map[string]any
// @Failure      403        {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}

	page, err := h.resources.ListEmployees(c.Request().Context(), ports.ListEmployeesInput{
		Scope:    scope,
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "per_page"),
		Status:   c.QueryParam("status"),
		Location: c.QueryParam("location"),
	})
	if err != nil {
		return err
	}

	out := employeeListResponse{
		Count:      page.Total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
		Employees:  make([]employeeResponse, 0, len(page.Employees)),
	}
	for _, emp := range page.Employees {
		out.Employees = append(out.Employees, employeeResponse{Employee: emp, Links: h.links(scope.CompanyID, emp.ID, false)})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one employee with links to its sub-resources.
//
// @Summary      Employee detail
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        companyId   path      string  true  "Company id"
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  employeeResponse
// @Failure      403         {object}  map[string]any
// @Failure      404         {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/employees/{employeeId} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}
	emp, err := h.resources.GetEmployee(c.Request().Context(), scope, c.Param("employeeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeResponse{Employee: *emp, Links: h.links(scope.CompanyID, emp.ID, true)})
}

// Pay returns the employee's pay detail with a derived annual salary.
//
// @Summary      Employee pay
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        companyId   path      string  true  "Company id"
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  ports.PayDetail
// @Failure      404         {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/employees/{employeeId}/pay [get]
func (h *EmployeeHandler) Pay(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}
	pay, err := h.resources.GetPay(c.Request().Context(), scope, c.Param("employeeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pay)
}

// @Summary      Employee benefits
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        companyId   path      string  true  "Company id"
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  benefitsResponse
// @Failure      404         {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/employees/{employeeId}/benefits [get]
func (h *EmployeeHandler) Benefits(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}
	id := c.Param("employeeId")
	benefits, err := h.resources.ListBenefits(c.Request().Context(), scope, id)
	if err != nil {
		return err
	}
	if benefits == nil {
		benefits = []domain.Benefit{}
	}
	return c.JSON(http.StatusOK, benefitsResponse{EmployeeID: id, Benefits: benefits})
}

// @Summary      Employee time entries
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        companyId   path      string  true  "Company id"
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  timeEntriesResponse
// @Failure      404         {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/employees/{employeeId}/time [get]
func (h *EmployeeHandler) Time(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}
	id := c.Param("employeeId")
	entries, err := h.resources.ListTimeEntries(c.Request().Context(), scope, id)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.TimeEntry{}
	}
	return c.JSON(http.StatusOK, timeEntriesResponse{EmployeeID: id, TimeEntries: entries})
}

// @Summary      Employee documents
// @Tags         employees
// @Security     BearerAuth
// @Produce      json
// @Param        companyId   path      string  true  "Company id"
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  documentsResponse
// @Failure      404         {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/employees/{employeeId}/documents [get]
func (h *EmployeeHandler) Documents(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}
	id := c.Param("employeeId")
	docs, err := h.resources.ListDocuments(c.Request().Context(), scope, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, documentsResponse{EmployeeID: id, Documents: docs})
}

// Config returns the company's reference lists.
//
// @Summary      Company config
// @Tags         company
// @Security     BearerAuth
// @Produce      json
// @Param        companyId  path      string  true  "Company id"
// @Success      200        {object}  ports.CompanyConfig
// @Failure      403        {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/config [get]
func (h *EmployeeHandler) Config(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}
	cfg, err := h.resources.CompanyConfig(c.Request().Context(), scope)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}
