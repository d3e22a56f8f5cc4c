package models

// CompanyStatus represents the registration status of a company
type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "active"
	CompanyInactive CompanyStatus = "inactive"
)

// Company represents a business record in the directory
type Company struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	NameArabic         string        `json:"name_arabic"`
	Country            string        `json:"country"`
	City               string        `json:"city"`
	Address            string        `json:"address,omitempty"`
	Industry           string        `json:"industry"`
	Employees          string        `json:"employees"`
	Status             CompanyStatus `json:"status"`
	RegistrationNumber string        `json:"registration_number"`
	FoundedYear        string        `json:"founded_year,omitempty"`
	LegalForm          string        `json:"legal_form,omitempty"`
	Description        string        `json:"description,omitempty"`
	Services           []string      `json:"services,omitempty"`
}

// ReportLanguage represents a language variant for reports with
// language-dependent pricing
type ReportLanguage string

const (
	LanguageEnglish ReportLanguage = "english"
	LanguageArabic  ReportLanguage = "arabic"
	LanguageBoth    ReportLanguage = "both"
)

// IsValidReportLanguage checks whether the given value is a known language variant
func IsValidReportLanguage(lang ReportLanguage) bool {
	switch lang {
	case LanguageEnglish, LanguageArabic, LanguageBoth:
		return true
	}
	return false
}

// PremiumReport represents a purchasable premium report offering
type PremiumReport struct {
	ID             string                     `json:"id"`
	Title          string                     `json:"title"`
	Description    string                     `json:"description"`
	Price          float64                    `json:"price"`
	TurnaroundDays string                     `json:"turnaround_days"`
	LanguagePrices map[ReportLanguage]float64 `json:"language_prices,omitempty"`
}

// HasLanguageOptions reports whether pricing depends on the selected language
func (r *PremiumReport) HasLanguageOptions() bool {
	return len(r.LanguagePrices) > 0
}

// PriceForLanguage returns the price for the selected language variant.
// Reports without language options always price at the base price.
func (r *PremiumReport) PriceForLanguage(lang ReportLanguage) (float64, error) {
	if !r.HasLanguageOptions() {
		return r.Price, nil
	}
	if lang == "" {
		lang = LanguageEnglish
	}
	price, ok := r.LanguagePrices[lang]
	if !ok {
		return 0, ErrInvalidInput
	}
	return price, nil
}

// InvestigationRequest represents a request for a fresh investigation of a
// company not present in the directory
type InvestigationRequest struct {
	CompanyName    string `json:"company_name"`
	Country        string `json:"country"`
	RequesterEmail string `json:"requester_email"`
	Notes          string `json:"notes,omitempty"`
}

// Validate validates the investigation request data
func (req *InvestigationRequest) Validate() error {
	if req.CompanyName == "" {
		return ErrInvalidInput
	}
	if req.Country == "" {
		return ErrInvalidInput
	}
	if err := ValidateEmail(req.RequesterEmail); err != nil {
		return err
	}
	return nil
}

// CustomReportRequest represents a request for a bespoke report on a
// directory company. The research team assesses the request and replies
// with cost, turnaround time, and a payment link.
type CustomReportRequest struct {
	Description    string `json:"description"`
	RequesterEmail string `json:"requester_email"`
}

// Validate validates the custom report request data
func (req *CustomReportRequest) Validate() error {
	if req.Description == "" {
		return ErrInvalidInput
	}
	if err := ValidateEmail(req.RequesterEmail); err != nil {
		return err
	}
	return nil
}
