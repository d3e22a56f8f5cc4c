package main

import (
	"fmt"

	"business-directory-platform/internal/services"
	"business-directory-platform/internal/utils"
)

// Prints the seeded company directory and report catalog for a quick sanity
// check of the data the server will serve.
func main() {
	companyService := services.NewCompanyService()

	fmt.Println("=== Company Directory ===")
	for _, company := range companyService.SearchCompanies("", "") {
		fmt.Printf("%-3s %-28s %-22s %-10s CRN: %s\n",
			company.ID,
			company.Name,
			company.Country,
			company.Status,
			utils.MaskRegistrationNumber(company.RegistrationNumber),
		)
	}

	fmt.Println()
	fmt.Println("=== Premium Reports ===")
	for _, report := range companyService.PremiumReports() {
		fmt.Printf("%-24s $%-6.2f TAT: %s\n", report.ID, report.Price, report.TurnaroundDays)
		for lang, price := range report.LanguagePrices {
			fmt.Printf("    %-10s $%.2f\n", lang, price)
		}
	}
}
