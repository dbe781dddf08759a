package payrollhandler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/domain/hr"
	"fsadmin/internal/domain/payroll"
	"fsadmin/internal/transport/http/api"
	"fsadmin/internal/transport/http/middleware"
	"fsadmin/internal/transport/http/shared"
)

type Handler struct {
	Service    *payroll.Service
	PayslipDir string
}

func NewHandler(service *payroll.Service, payslipDir string) *Handler {
	return &Handler{Service: service, PayslipDir: payslipDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)
	reader := middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin, auth.RoleManager)

	r.Route("/payroll", func(r chi.Router) {
		r.With(reader).Get("/employees/{employeeID}/structure", h.handleGetStructure)
		r.With(admin).Post("/employees/{employeeID}/structure/auto", h.handleAutoCalculate)
		r.With(admin).Put("/employees/{employeeID}/structure", h.handleOverrideStructure)
		r.With(admin).Post("/slips", h.handleGenerateSlip)
		r.With(admin).Post("/slips/bulk", h.handleGenerateMonthly)
		r.With(reader).Get("/slips", h.handleListSlips)
		r.With(reader).Get("/slips/{slipID}", h.handleGetSlip)
		r.With(reader).Get("/slips/{slipID}/download", h.handleDownloadSlip)
		r.With(reader).Get("/records", h.handleListRecords)
		r.With(admin).Post("/records/{recordID}/process", h.handleProcessRecord)
		r.With(reader).Get("/summary", h.handleSummary)
		r.With(reader).Get("/export/register", h.handleExportRegister)
	})
}

func (h *Handler) handleGetStructure(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	structure, err := h.Service.StructureFor(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "salary structure not found", requestID)
		return
	}
	api.Success(w, structure, requestID)
}

func (h *Handler) handleAutoCalculate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	structure, err := h.Service.AutoCalculate(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	api.Success(w, structure, requestID)
}

type structurePayload struct {
	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	DA               float64 `json:"da"`
	Conveyance       float64 `json:"conveyance"`
	Medical          float64 `json:"medical"`
	SpecialAllowance float64 `json:"specialAllowance"`
	OtherAllowances  float64 `json:"otherAllowances"`
	PF               float64 `json:"pf"`
	ESIC             float64 `json:"esic"`
	ProfessionalTax  float64 `json:"professionalTax"`
	TDS              float64 `json:"tds"`
	OtherDeductions  float64 `json:"otherDeductions"`
}

func (h *Handler) handleOverrideStructure(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload structurePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.NonNegative("basic", payload.Basic, "basic cannot be negative")
	v.NonNegative("hra", payload.HRA, "hra cannot be negative")
	v.NonNegative("da", payload.DA, "da cannot be negative")
	v.NonNegative("pf", payload.PF, "pf cannot be negative")
	v.NonNegative("esic", payload.ESIC, "esic cannot be negative")
	v.NonNegative("tds", payload.TDS, "tds cannot be negative")
	v.NonNegative("otherDeductions", payload.OtherDeductions, "other deductions cannot be negative")
	if v.Reject(w, requestID) {
		return
	}

	structure, err := h.Service.Override(payroll.SalaryStructure{
		EmployeeID:       chi.URLParam(r, "employeeID"),
		Basic:            payload.Basic,
		HRA:              payload.HRA,
		DA:               payload.DA,
		Conveyance:       payload.Conveyance,
		Medical:          payload.Medical,
		SpecialAllowance: payload.SpecialAllowance,
		OtherAllowances:  payload.OtherAllowances,
		PF:               payload.PF,
		ESIC:             payload.ESIC,
		ProfessionalTax:  payload.ProfessionalTax,
		TDS:              payload.TDS,
		OtherDeductions:  payload.OtherDeductions,
	})
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	api.Success(w, structure, requestID)
}

type slipPayload struct {
	EmployeeID string `json:"employeeId"`
	Month      string `json:"month"`
	PaidDays   int    `json:"paidDays"`
}

func (h *Handler) handleGenerateSlip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload slipPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	month, _ := v.Month("month", payload.Month)
	if payload.PaidDays < 0 {
		v.Add("paidDays", "paid days cannot be negative")
	}
	if v.Reject(w, requestID) {
		return
	}

	slip, err := h.Service.GenerateSlip(payload.EmployeeID, month, payload.PaidDays)
	switch {
	case errors.Is(err, hr.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, payroll.ErrStructureNotFound):
		api.Fail(w, http.StatusConflict, "structure_missing", "salary structure not configured for employee", requestID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "slip_failed", "failed to generate salary slip", requestID)
	default:
		api.Created(w, slip, requestID)
	}
}

type bulkPayload struct {
	Month    string `json:"month"`
	PaidDays int    `json:"paidDays"`
}

func (h *Handler) handleGenerateMonthly(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload bulkPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	month, _ := v.Month("month", payload.Month)
	if payload.PaidDays < 0 {
		v.Add("paidDays", "paid days cannot be negative")
	}
	if v.Reject(w, requestID) {
		return
	}

	api.Success(w, h.Service.GenerateMonthly(month, payload.PaidDays), requestID)
}

func (h *Handler) handleListSlips(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	api.Success(w, h.Service.Slips(r.URL.Query().Get("employeeId")), requestID)
}

func (h *Handler) handleGetSlip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	slip, err := h.Service.Slip(chi.URLParam(r, "slipID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "salary slip not found", requestID)
		return
	}
	api.Success(w, slip, requestID)
}

func (h *Handler) handleDownloadSlip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	slip, err := h.Service.Slip(chi.URLParam(r, "slipID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "salary slip not found", requestID)
		return
	}

	filePath, err := h.renderPayslipPDF(slip)
	if err != nil {
		log.Printf("payslip pdf generation failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", requestID)
		return
	}
	http.ServeFile(w, r, filePath)
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Records(), middleware.GetRequestID(r.Context()))
}

type processPayload struct {
	BankDetails string `json:"bankDetails"`
}

func (h *Handler) handleProcessRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload processPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	record, err := h.Service.MarkProcessed(chi.URLParam(r, "recordID"), payload.BankDetails)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Summary(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportRegister(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=payroll-register.csv")

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"record_id", "employee_id", "month", "basic", "allowances", "deductions", "net", "status"}); err != nil {
		log.Printf("export register header write failed: %v", err)
	}
	for _, record := range h.Service.Records() {
		row := []string{
			record.ID,
			record.EmployeeID,
			record.Month,
			fmt.Sprintf("%.2f", record.BasicSalary),
			fmt.Sprintf("%.2f", record.Allowances),
			fmt.Sprintf("%.2f", record.Deductions),
			fmt.Sprintf("%.2f", record.NetSalary),
			record.Status,
		}
		if err := writer.Write(row); err != nil {
			log.Printf("export register row write failed: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("export register flush failed: %v", err)
	}
}

// Earnings and deductions are printed in the fixed payslip layout order,
// not map iteration order.
var payslipEarningOrder = []struct{ key, label string }{
	{payroll.ComponentBasic, "Basic"},
	{payroll.ComponentDA, "DA"},
	{payroll.ComponentHRA, "HRA"},
	{payroll.ComponentCCA, "CCA"},
	{payroll.ComponentWashing, "Washing Allowance"},
	{payroll.ComponentLeave, "Leave"},
	{payroll.ComponentMedical, "Medical"},
	{payroll.ComponentBonus, "Bonus"},
	{payroll.ComponentOtherAllowances, "Other Allowances"},
}

var payslipDeductionOrder = []struct{ key, label string }{
	{payroll.ComponentPF, "PF"},
	{payroll.ComponentESIC, "ESIC"},
	{payroll.ComponentMonthly, "Monthly Deductions"},
	{payroll.ComponentWelfareFund, "Welfare Fund"},
	{payroll.ComponentProfessionalTax, "Professional Tax"},
}

func (h *Handler) renderPayslipPDF(slip payroll.SalarySlip) (string, error) {
	if err := os.MkdirAll(h.PayslipDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(h.PayslipDir, slip.ID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Slip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.Employee))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", slip.Designation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s    Paid Days: %d", slip.Month, slip.PaidDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("UAN: %s    ESIC: %s", slip.UAN, slip.ESICNumber))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, component := range payslipEarningOrder {
		pdf.Cell(90, 7, component.label)
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", slip.Earnings[component.key]), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, component := range payslipDeductionOrder {
		pdf.Cell(90, 7, component.label)
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", slip.Deductions[component.key]), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(90, 8, "Net Salary")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", slip.NetSalary), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
