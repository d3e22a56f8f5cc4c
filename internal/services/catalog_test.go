package services

import (
	"testing"

	"business-directory-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyService_SearchCompanies(t *testing.T) {
	svc := NewCompanyService()

	tests := []struct {
		name    string
		query   string
		country string
		wantIDs []string
	}{
		{
			name:    "all companies with empty filters",
			wantIDs: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:    "filter by uae",
			country: "uae",
			wantIDs: []string{"1", "2", "5", "6"},
		},
		{
			name:    "filter by saudi",
			country: "saudi",
			wantIDs: []string{"3"},
		},
		{
			name:    "filter by qatar",
			country: "qatar",
			wantIDs: []string{"4"},
		},
		{
			name:    "name substring is case-insensitive",
			query:   "emirates",
			wantIDs: []string{"1"},
		},
		{
			name:    "name and country combined",
			query:   "dubai",
			country: "uae",
			wantIDs: []string{"2"},
		},
		{
			name:    "unknown country code matches all countries",
			country: "mars",
			wantIDs: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:    "no matches",
			query:   "nonexistent corp",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := svc.SearchCompanies(tt.query, tt.country)
			ids := make([]string, 0, len(results))
			for _, c := range results {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCompanyService_GetCompanyByID(t *testing.T) {
	svc := NewCompanyService()

	company, err := svc.GetCompanyByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Emirates Steel Industries", company.Name)
	assert.Equal(t, models.CompanyActive, company.Status)

	_, err = svc.GetCompanyByID("999")
	assert.ErrorIs(t, err, models.ErrCompanyNotFound)
}

func TestCompanyService_PremiumReports(t *testing.T) {
	svc := NewCompanyService()

	reports := svc.PremiumReports()
	require.Len(t, reports, 8)

	prices := map[string]float64{
		"business_activities":    25,
		"commercial_address":     15,
		"company_capital":        30,
		"partners_shareholders":  45,
		"authorized_signatories": 35,
		"media_report":           50,
		"litigation_records":     60,
		"credit_rating":          75,
	}
	for _, report := range reports {
		want, ok := prices[report.ID]
		require.True(t, ok, "unexpected report %s", report.ID)
		assert.Equal(t, want, report.Price)
		assert.NotEmpty(t, report.TurnaroundDays)
	}
}

func TestCompanyService_MediaReportLanguagePricing(t *testing.T) {
	svc := NewCompanyService()

	report, err := svc.GetReportByID("media_report")
	require.NoError(t, err)
	require.True(t, report.HasLanguageOptions())

	both, err := report.PriceForLanguage(models.LanguageBoth)
	require.NoError(t, err)
	assert.Equal(t, 85.0, both)

	english, err := report.PriceForLanguage(models.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, 50.0, english)

	_, err = svc.GetReportByID("unknown_report")
	assert.ErrorIs(t, err, models.ErrReportNotFound)
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "United Arab Emirates", CountryName("uae"))
	assert.Equal(t, "Qatar", CountryName("qatar"))
	assert.Equal(t, "All Countries", CountryName(""))
	assert.Equal(t, "All Countries", CountryName("mars"))
}
