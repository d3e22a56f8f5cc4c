package handlers

import (
	"log"
	"net/http"

	"business-directory-platform/internal/models"
	"business-directory-platform/internal/services"
	"business-directory-platform/internal/utils"

	"github.com/go-chi/chi/v5"
)

// PublicHandler handles the public directory pages: company search and
// fresh-investigation requests
type PublicHandler struct {
	companyService services.CompanyServiceInterface
	emailService   services.EmailServiceInterface
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(companyService services.CompanyServiceInterface, emailService services.EmailServiceInterface) *PublicHandler {
	return &PublicHandler{
		companyService: companyService,
		emailService:   emailService,
	}
}

// companySummary is the public shape of a directory record. Registration
// numbers are masked before display.
type companySummary struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	NameArabic         string               `json:"name_arabic"`
	Country            string               `json:"country"`
	City               string               `json:"city"`
	Industry           string               `json:"industry"`
	Employees          string               `json:"employees"`
	Status             models.CompanyStatus `json:"status"`
	RegistrationNumber string               `json:"registration_number"`
}

func summarizeCompany(c *models.Company) companySummary {
	return companySummary{
		ID:                 c.ID,
		Name:               c.Name,
		NameArabic:         c.NameArabic,
		Country:            c.Country,
		City:               c.City,
		Industry:           c.Industry,
		Employees:          c.Employees,
		Status:             c.Status,
		RegistrationNumber: utils.MaskRegistrationNumber(c.RegistrationNumber),
	}
}

// Search handles GET /api/search
func (h *PublicHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	country := r.URL.Query().Get("country")

	companies := h.companyService.SearchCompanies(query, country)

	results := make([]companySummary, 0, len(companies))
	for _, company := range companies {
		results = append(results, summarizeCompany(company))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"country": services.CountryName(country),
		"count":   len(results),
		"results": results,
	})
}

// RequestInvestigation handles POST /api/investigations. When a company is
// not in the directory, visitors can request a fresh investigation; the
// request is acknowledged to their email.
func (h *PublicHandler) RequestInvestigation(w http.ResponseWriter, r *http.Request) {
	var req models.InvestigationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.emailService.SendInvestigationAck(r.Context(), req.RequesterEmail, req.CompanyName, req.Country); err != nil {
		log.Printf("Failed to acknowledge investigation request: %v", err)
		respondError(w, http.StatusBadGateway, "Failed to send acknowledgment email")
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"status": "received",
	})
}

// RequestCustomReport handles POST /api/companies/{id}/custom-report. When the
// catalog reports don't cover what a visitor needs, they can describe a bespoke
// report for a directory company; the team assesses it offline and replies by
// email with cost, turnaround, and a payment link.
func (h *PublicHandler) RequestCustomReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	company, err := h.companyService.GetCompanyByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Company not found")
		return
	}

	var req models.CustomReportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.emailService.SendCustomReportAck(r.Context(), req.RequesterEmail, company.Name, req.Description); err != nil {
		log.Printf("Failed to acknowledge custom report request: %v", err)
		respondError(w, http.StatusBadGateway, "Failed to send acknowledgment email")
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"status": "received",
	})
}
