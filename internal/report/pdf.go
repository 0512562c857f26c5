package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/hocs-app/hocs/internal/opportunity"
	"github.com/hocs-app/hocs/internal/property"
)

// Input is everything the renderer needs for one report.
type Input struct {
	Property      property.Attributes
	Opportunities []opportunity.SavingsOpportunity
	GeneratedAt   time.Time
}

func formatCurrency(v float64) string {
	n := int64(v + 0.5)
	if n < 1000 {
		return fmt.Sprintf("$%d", n)
	}
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return "$" + string(out)
}

// utilityPortalLine returns the portal hint for the headline provider.
func utilityPortalLine(provider string) string {
	switch provider {
	case "LADWP":
		return "LADWP account: ladwp.com (electricity & water)"
	case "Pasadena Water & Power":
		return "Pasadena Water & Power: cityofpasadena.net/water-and-power"
	case "Glendale Water & Power":
		return "Glendale Water & Power: glendaleca.gov/water-power"
	case "Burbank Water & Power":
		return "Burbank Water & Power: burbankwaterandpower.com"
	default:
		return provider + ": Check your utility provider's website"
	}
}

func utilityContactRow(provider string) [3]string {
	switch provider {
	case "Pasadena Water & Power":
		return [3]string{"Pasadena Water & Power", "(626) 744-4005", "cityofpasadena.net/water-and-power"}
	case "Glendale Water & Power":
		return [3]string{"Glendale Water & Power", "(818) 548-2000", "glendaleca.gov/water-power"}
	case "Burbank Water & Power":
		return [3]string{"Burbank Water & Power", "(818) 238-3700", "burbankwaterandpower.com"}
	case "LADWP":
		return [3]string{"LADWP", "(800) 342-5397", "ladwp.com"}
	default:
		return [3]string{"LADWP", "(800) 342-5397", "ladwp.com"}
	}
}

// RenderPDF produces the full action-plan PDF: cover, property table, the
// five tiers, a resources table, and closing principles.
func RenderPDF(in Input) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Cover
	pdf.AddPage()
	pdf.Ln(40)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 12, "HOCS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(75, 85, 99)
	pdf.CellFormat(0, 8, "Home Ownership Cost Savings", "", 1, "C", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(0, 10, "Your Visibility-First Action Plan", "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(55, 65, 81)
	pdf.CellFormat(0, 6, tr("Property: "+in.Property.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+in.GeneratedAt.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	total := TotalAnnualSavings(in.Opportunities)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Total Potential Annual Savings: "+formatCurrency(total), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "Follow this crawl-walk-run approach: Start with Tier 1 to establish visibility, then work through each tier sequentially. Complete one tier before moving to the next.", "", "L", false)

	// Property insights
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(0, 10, "Property Insights", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	rows := [][2]string{
		{"Year Built", fmt.Sprintf("%d", in.Property.YearBuilt)},
		{"Square Feet", fmt.Sprintf("%d", in.Property.SquareFeet)},
		{"Bedrooms/Bathrooms", fmt.Sprintf("%d/%d", in.Property.Bedrooms, in.Property.Bathrooms)},
		{"Utility Provider", in.Property.UtilityProvider},
		{"Wildfire Zone", string(in.Property.WildfireZone)},
		{"Solar Feasibility Score", fmt.Sprintf("%g/100", in.Property.SolarFeasibility)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.SetFillColor(243, 244, 246)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(64, 8, r[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(90, 8, tr(r[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	tiers := Classify(in.Opportunities)

	// Tier 1 carries fixed setup guidance rather than engine output.
	renderTierHeading(pdf, tiers[0])
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	steps := []string{
		"1. Set up your utility portals:",
		"   - " + utilityPortalLine(in.Property.UtilityProvider),
		"   - SoCalGas account: socalgas.com (natural gas)",
		"2. Download the last 12 months of bills (if available) to establish your baseline usage and costs",
		"3. Create a simple tracking spreadsheet with columns for: Date, Electric Bill, Gas Bill, Water Bill, Total",
		"4. Note your current monthly averages before making any changes",
	}
	for _, s := range steps {
		pdf.MultiCell(0, 5, tr(s), "", "L", false)
	}
	pdf.Ln(2)
	pdf.MultiCell(0, 5, "Why this matters: This baseline data will help you measure the actual impact of every change you make. Spend 30-60 minutes on this step before moving to Tier 2.", "", "L", false)
	pdf.Ln(4)

	for _, tg := range tiers[1:] {
		renderTierHeading(pdf, tg)
		if len(tg.Opportunities) == 0 {
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(107, 114, 128)
			pdf.MultiCell(0, 5, "No specific programs in this tier for your property. Move to the next tier when ready.", "", "L", false)
			pdf.Ln(2)
			continue
		}
		for _, o := range tg.Opportunities {
			renderOpportunity(pdf, tr, o)
		}
	}

	// Resources
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(0, 10, "Program Resources & Contact Information", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.MultiCell(0, 5, "Quick reference for all the programs, rebates, and services mentioned in your action plan", "", "L", false)
	pdf.Ln(4)

	contacts := [][3]string{
		utilityContactRow(in.Property.UtilityProvider),
		{"SoCalGas", "(877) 238-0092", "socalgas.com/rebates"},
		{"LA County Weatherization", "(626) 569-4328", "dcba.lacounty.gov/weatherization"},
		{"ENERGY STAR", "-", "energystar.gov"},
	}
	pdf.SetTextColor(31, 41, 55)
	for _, c := range contacts {
		pdf.SetFillColor(249, 250, 251)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(64, 8, tr(c[0]), "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(38, 8, c[1], "1", 0, "L", true, 0, "")
		pdf.CellFormat(64, 8, c[2], "1", 1, "L", true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Key Principles for Success", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(55, 65, 81)
	principles := []string{
		"- Complete Tier 1 first: Establish your baseline before making any changes",
		"- Track everything: Document the date of each change and compare monthly bills",
		"- Wait 3-6 months: Before major investments (Tier 5), verify your usage patterns with data",
		"- Start with free programs: Maximize no-cost opportunities before spending money",
		"- Use your data: Let actual usage inform which upgrades make sense for your home",
	}
	for _, p := range principles {
		pdf.MultiCell(0, 5, p, "", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, "Generated by HOCS - Home Ownership Cost Savings | "+in.GeneratedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTierHeading(pdf *fpdf.Fpdf, tg TierGroup) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(0, 8, fmt.Sprintf("Tier %d: %s", tg.Tier, tg.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(0, 5, tg.Description, "", "L", false)
	pdf.Ln(1)
}

func renderOpportunity(pdf *fpdf.Fpdf, tr func(string) string, o opportunity.SavingsOpportunity) {
	title := o.Name
	if o.UpfrontCost.Max == 0 {
		title += " [FREE]"
	}
	title += " - Annual Savings: " + formatCurrency(o.AnnualSavings)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(31, 41, 55)
	pdf.MultiCell(0, 5, tr(title), "", "L", false)

	cost := "Your Cost: $0"
	if o.UpfrontCost.Max > 0 {
		cost = fmt.Sprintf("Your Cost: %s-%s", formatCurrency(o.UpfrontCost.Min), formatCurrency(o.UpfrontCost.Max))
	}
	cost += " | Effort: " + string(o.Difficulty)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.MultiCell(0, 4.5, cost, "", "L", false)

	if len(o.Benefits) > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 4.5, tr(o.Benefits[0]), "", "L", false)
	}
	if len(o.NextSteps) > 0 {
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, "Next Steps:", "", "L", false)
		for i, s := range o.NextSteps {
			if i >= 2 {
				break
			}
			pdf.MultiCell(0, 4.5, fmt.Sprintf("%d. %s", i+1, tr(s)), "", "L", false)
		}
	}
	pdf.Ln(3)
}
