package handlers

import (
	"errors"
	"net/http"

	"business-directory-platform/internal/models"
	"business-directory-platform/internal/services"
	"business-directory-platform/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// CompanyHandler handles company detail pages and adding premium reports
// to the cart
type CompanyHandler struct {
	companyService services.CompanyServiceInterface
	store          sessions.Store
	notifier       *services.CartNotifier
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService services.CompanyServiceInterface, store sessions.Store, notifier *services.CartNotifier) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		store:          store,
		notifier:       notifier,
	}
}

// cartStore builds the session-backed cart store for this request
func (h *CompanyHandler) cartStore(w http.ResponseWriter, r *http.Request) *services.CartStore {
	return services.NewCartStore(services.NewSessionCartBackend(h.store, w, r), h.notifier)
}

// reportOffering is a premium report plus its in-cart flag for this visitor
type reportOffering struct {
	*models.PremiumReport
	InCart bool `json:"in_cart"`
}

// GetCompany handles GET /api/companies/{id}. The response carries the
// report catalog with per-report in-cart flags so the page can disable
// already-added offerings.
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	company, err := h.companyService.GetCompanyByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Company not found")
		return
	}

	cart := h.cartStore(w, r)

	reports := make([]reportOffering, 0)
	for _, report := range h.companyService.PremiumReports() {
		reports = append(reports, reportOffering{
			PremiumReport: report,
			InCart:        cart.Contains(company.ID, report.Title),
		})
	}

	detail := *company
	detail.RegistrationNumber = utils.MaskRegistrationNumber(company.RegistrationNumber)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"company": detail,
		"reports": reports,
	})
}

// addToCartRequest is the body of an add-to-cart call
type addToCartRequest struct {
	ReportID string                `json:"report_id"`
	Language models.ReportLanguage `json:"language,omitempty"`
}

// AddToCart handles POST /api/companies/{id}/cart. A report already in the
// cart for this company is rejected here rather than accumulating a
// duplicate line item; the store itself does not deduplicate.
func (h *CompanyHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	company, err := h.companyService.GetCompanyByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Company not found")
		return
	}

	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := h.companyService.GetReportByID(req.ReportID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Report not found")
		return
	}

	price, err := report.PriceForLanguage(req.Language)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Unknown report language")
		return
	}

	language := req.Language
	if !report.HasLanguageOptions() {
		language = ""
	}

	cart := h.cartStore(w, r)

	if cart.Contains(company.ID, report.Title) {
		respondError(w, http.StatusConflict, "Report is already in the cart for this company")
		return
	}

	item, err := cart.Add(models.CartItem{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		ItemName:    report.Title,
		Price:       price,
		Language:    language,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"item":  item,
		"count": cart.Count(),
		"total": cart.Total(),
	})
}
