package services

import (
	"strings"

	"business-directory-platform/internal/models"
)

// CompanyService serves the company directory and the premium report
// catalog. The data is seeded in memory; the directory is read-only input
// to the rest of the system.
type CompanyService struct {
	companies []*models.Company
	reports   []*models.PremiumReport
}

// NewCompanyService creates a company service with the seeded directory
func NewCompanyService() *CompanyService {
	return &CompanyService{
		companies: seedCompanies(),
		reports:   seedPremiumReports(),
	}
}

// countryNames maps search form country codes to directory country names
var countryNames = map[string]string{
	"uae":     "United Arab Emirates",
	"saudi":   "Saudi Arabia",
	"qatar":   "Qatar",
	"egypt":   "Egypt",
	"bahrain": "Bahrain",
	"kuwait":  "Kuwait",
	"oman":    "Oman",
}

// CountryName returns the display name for a search country code
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return "All Countries"
}

// SearchCompanies filters the directory by country code and case-insensitive
// name substring. An empty or unknown country code matches every country;
// an empty query matches every name.
func (s *CompanyService) SearchCompanies(query, country string) []*models.Company {
	countryName := countryNames[country]
	needle := strings.ToLower(query)

	results := make([]*models.Company, 0)
	for _, company := range s.companies {
		if countryName != "" && company.Country != countryName {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(company.Name), needle) {
			continue
		}
		results = append(results, company)
	}
	return results
}

// GetCompanyByID returns the company with the given id
func (s *CompanyService) GetCompanyByID(id string) (*models.Company, error) {
	for _, company := range s.companies {
		if company.ID == id {
			return company, nil
		}
	}
	return nil, models.ErrCompanyNotFound
}

// PremiumReports returns the full premium report catalog
func (s *CompanyService) PremiumReports() []*models.PremiumReport {
	return s.reports
}

// GetReportByID returns the premium report with the given id
func (s *CompanyService) GetReportByID(id string) (*models.PremiumReport, error) {
	for _, report := range s.reports {
		if report.ID == id {
			return report, nil
		}
	}
	return nil, models.ErrReportNotFound
}

func seedCompanies() []*models.Company {
	return []*models.Company{
		{
			ID:                 "1",
			Name:               "Emirates Steel Industries",
			NameArabic:         "صناعات الإمارات للحديد",
			Country:            "United Arab Emirates",
			City:               "Abu Dhabi",
			Address:            "Musaffah Industrial Area, Abu Dhabi, UAE",
			Industry:           "Manufacturing & Steel Production",
			Employees:          "1,500-2,000",
			Status:             models.CompanyActive,
			RegistrationNumber: "CN-1234567",
			FoundedYear:        "1998",
			LegalForm:          "Private Limited Company",
			Description:        "Emirates Steel Industries is one of the largest steel manufacturing companies in the Middle East, producing high-quality steel products for construction and industrial applications.",
			Services:           []string{"Steel Manufacturing", "Rebar Production", "Wire Rod Production", "Quality Control", "Export Services"},
		},
		{
			ID:                 "2",
			Name:               "Dubai Holdings",
			NameArabic:         "دبي القابضة",
			Country:            "United Arab Emirates",
			City:               "Dubai",
			Address:            "Emirates Towers, Sheikh Zayed Road, Dubai, UAE",
			Industry:           "Investment & Real Estate",
			Employees:          "5,000+",
			Status:             models.CompanyActive,
			RegistrationNumber: "CN-2345678",
			FoundedYear:        "2004",
			LegalForm:          "Public Joint Stock Company",
			Description:        "Dubai Holdings is a diversified investment group with holdings across real estate, hospitality, and technology sectors.",
			Services:           []string{"Asset Management", "Real Estate Development", "Hospitality"},
		},
		{
			ID:                 "3",
			Name:               "Saudi Aramco Services",
			NameArabic:         "خدمات أرامكو السعودية",
			Country:            "Saudi Arabia",
			City:               "Dhahran",
			Address:            "Dhahran Corporate Complex, Dhahran, KSA",
			Industry:           "Oil & Gas Services",
			Employees:          "10,000+",
			Status:             models.CompanyActive,
			RegistrationNumber: "CR-3456789",
			FoundedYear:        "1988",
			LegalForm:          "Limited Liability Company",
			Description:        "Saudi Aramco Services provides engineering, logistics, and support services to the upstream and downstream energy sector.",
			Services:           []string{"Engineering Services", "Logistics", "Procurement"},
		},
		{
			ID:                 "4",
			Name:               "Qatar National Bank",
			NameArabic:         "بنك قطر الوطني",
			Country:            "Qatar",
			City:               "Doha",
			Address:            "QNB Tower, Corniche Street, Doha, Qatar",
			Industry:           "Banking & Finance",
			Employees:          "3,000-5,000",
			Status:             models.CompanyActive,
			RegistrationNumber: "QR-4567890",
			FoundedYear:        "1964",
			LegalForm:          "Public Shareholding Company",
			Description:        "Qatar National Bank is the largest financial institution in the Middle East and Africa region by assets.",
			Services:           []string{"Retail Banking", "Corporate Banking", "Asset Management"},
		},
		{
			ID:                 "5",
			Name:               "Emaar Properties",
			NameArabic:         "إعمار العقارية",
			Country:            "United Arab Emirates",
			City:               "Dubai",
			Address:            "Emaar Square, Downtown Dubai, UAE",
			Industry:           "Real Estate Development",
			Employees:          "2,500-3,000",
			Status:             models.CompanyActive,
			RegistrationNumber: "CN-5678901",
			FoundedYear:        "1997",
			LegalForm:          "Public Joint Stock Company",
			Description:        "Emaar Properties is a global property developer known for large-scale mixed-use developments.",
			Services:           []string{"Property Development", "Malls", "Hospitality"},
		},
		{
			ID:                 "6",
			Name:               "Al Majid Trading",
			NameArabic:         "المجيد للتجارة",
			Country:            "United Arab Emirates",
			City:               "Dubai",
			Address:            "Deira, Dubai, UAE",
			Industry:           "Retail & Trading",
			Employees:          "500-1,000",
			Status:             models.CompanyInactive,
			RegistrationNumber: "CN-6789012",
			FoundedYear:        "1985",
			LegalForm:          "Limited Liability Company",
			Description:        "Al Majid Trading operated consumer retail and distribution businesses across the Gulf region.",
			Services:           []string{"Retail", "Distribution"},
		},
	}
}

func seedPremiumReports() []*models.PremiumReport {
	return []*models.PremiumReport{
		{
			ID:             "business_activities",
			Title:          "Business Activities",
			Description:    "Detailed breakdown of all registered business activities, trade classifications, and industry codes.",
			Price:          25,
			TurnaroundDays: "2-3 days",
		},
		{
			ID:             "commercial_address",
			Title:          "Commercial Address",
			Description:    "Verified commercial address with full details including building, street, district, and postal information.",
			Price:          15,
			TurnaroundDays: "1-2 days",
		},
		{
			ID:             "company_capital",
			Title:          "Company Capital",
			Description:    "Complete capital structure including authorized capital, paid-up capital, and share distribution details.",
			Price:          30,
			TurnaroundDays: "3-5 days",
		},
		{
			ID:             "partners_shareholders",
			Title:          "Partners and Shareholders",
			Description:    "Full list of partners and shareholders with ownership percentages, nationalities, and contribution details.",
			Price:          45,
			TurnaroundDays: "5-7 days",
		},
		{
			ID:             "authorized_signatories",
			Title:          "Authorized Signatories",
			Description:    "Verified list of authorized signatories with their powers, limitations, and signature specimens.",
			Price:          35,
			TurnaroundDays: "4-6 days",
		},
		{
			ID:             "media_report",
			Title:          "Media Report",
			Description:    "Comprehensive media coverage analysis including news articles, press releases, and public mentions.",
			Price:          50,
			TurnaroundDays: "7-10 days",
			LanguagePrices: map[models.ReportLanguage]float64{
				models.LanguageEnglish: 50,
				models.LanguageArabic:  50,
				models.LanguageBoth:    85,
			},
		},
		{
			ID:             "litigation_records",
			Title:          "Litigation Records",
			Description:    "Complete litigation history including court cases, judgments, and pending legal matters.",
			Price:          60,
			TurnaroundDays: "7-10 days",
		},
		{
			ID:             "credit_rating",
			Title:          "Credit Rating & Score",
			Description:    "Professional credit assessment with rating, score, payment behavior, and risk analysis.",
			Price:          75,
			TurnaroundDays: "5-7 days",
		},
	}
}
