// Package legal generates ready-to-print legal documents and holds the
// statutory rights reference data.
package legal

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// ViolationKind names a discount violation a complaint letter can cite.
type ViolationKind string

// Supported violation kinds.
const (
	ViolationRefusal       ViolationKind = "refusal"
	ViolationMEMCRefusal   ViolationKind = "memc_refusal"
	ViolationServiceCharge ViolationKind = "service_charge"
	ViolationExpressLane   ViolationKind = "express_lane"
	ViolationIDRejection   ViolationKind = "id_rejection"
	ViolationFlatDiscount  ViolationKind = "flat_discount"
	ViolationOneItemPolicy ViolationKind = "one_item_policy"
	ViolationVATOnly       ViolationKind = "vat_only"
)

// Purpose names what an authorization letter empowers the representative
// to do.
type Purpose string

// Supported authorization purposes.
const (
	PurposeMedicine      Purpose = "medicine"
	PurposeGrocery       Purpose = "grocery"
	PurposeIDApplication Purpose = "id-application"
)

// ErrUnknownViolation is returned for a violation kind not in the catalog.
var ErrUnknownViolation = errors.New("unknown violation kind")

// ErrUnknownPurpose is returned for an authorization purpose not in the
// catalog.
var ErrUnknownPurpose = errors.New("unknown authorization purpose")

const lawReference = "Republic Act No. 10754 (An Act Expanding the Benefits and Privileges of Persons with Disability) and/or Republic Act No. 9994 (Expanded Senior Citizens Act of 2010)"

var violationTexts = map[ViolationKind]string{
	ViolationRefusal:       "refusal to grant the mandated 20% discount and/or VAT exemption",
	ViolationMEMCRefusal:   "refusal to apply the 20% discount on the Most Expensive Meal Combination (MEMC) for takeout/delivery orders as mandated by RR 7-2010",
	ViolationServiceCharge: "illegal collection of service charge despite exemption",
	ViolationExpressLane:   "failure to provide an express lane or priority service",
	ViolationIDRejection:   "refusal to honor my valid PWD/Senior Citizen ID",
	ViolationFlatDiscount:  "application of a flat discount amount instead of the mandated 20% discount and VAT exemption",
	ViolationOneItemPolicy: "application of discount to only one item despite the order being for personal consumption",
	ViolationVATOnly:       "granting of VAT exemption only without the corresponding 20% discount",
}

var purposeTexts = map[Purpose]string{
	PurposeMedicine:      "purchase medicines and sign the purchase booklet",
	PurposeGrocery:       "purchase basic necessities and prime commodities",
	PurposeIDApplication: "apply for/claim my PWD/Senior Citizen ID",
}

// ComplaintInput collects the facts of a discount violation.
type ComplaintInput struct {
	Merchant  string
	Date      string
	Violation ViolationKind
	Details   string
}

// AuthorizationInput collects the parties of an authorization letter.
type AuthorizationInput struct {
	PrincipalName  string
	PrincipalID    string
	Representative string
	Relation       string
	Purpose        Purpose
	Date           time.Time
}

var complaintTmpl = template.Must(template.New("complaint").Parse(
	`Subject: Formal Complaint Against {{.Merchant}} for Violation of {{.Law}}

To the Office for Senior Citizens Affairs (OSCA) / Persons with Disability Affairs Office (PDAO) / Department of Trade and Industry (DTI):

I am writing to formally file a complaint against {{.Merchant}} located at [Merchant Address] regarding an incident that occurred on {{.Date}}.

The nature of the violation is the {{.ViolationText}}.

Details of the Incident:
{{.Details}}

This action is a clear violation of {{.Law}}, specifically the provisions mandating privileges for Senior Citizens and Persons with Disability.

I have attached copies of the receipt and my ID as proof of this transaction and my eligibility.

I respectfully request your office to investigate this matter and take appropriate action to ensure this establishment complies with the law.

Sincerely,

[Your Name]
[Your Contact Number]
[Your ID Number]`))

var authorizationTmpl = template.Must(template.New("authorization").Parse(
	`AUTHORIZATION LETTER

{{.Date}}

To Whom It May Concern:

I, {{.PrincipalName}}, a holder of PWD/Senior Citizen ID No. {{.PrincipalID}}, do hereby authorize my {{.Relation}}, {{.Representative}}, to {{.PurposeText}} on my behalf.

This authorization is made in accordance with the provisions of Republic Act No. 10754 (An Act Expanding the Benefits and Privileges of Persons with Disability) and/or Republic Act No. 9994 (Expanded Senior Citizens Act of 2010), which allows representatives to claim privileges for the principal beneficiary.

Attached herewith is my PWD/Senior Citizen ID and my Purchase Booklet (if applicable) for your verification.

Sincerely,

{{.PrincipalName}}
Principal / ID Holder`))

// ComplaintLetter renders a formal complaint letter for the given
// violation. Blank fields are replaced with fill-in placeholders so the
// letter stays printable.
func ComplaintLetter(in ComplaintInput) (string, error) {
	violationText, ok := violationTexts[in.Violation]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownViolation, in.Violation)
	}

	data := map[string]string{
		"Merchant":      orPlaceholder(in.Merchant, "[Merchant Name]"),
		"Date":          orPlaceholder(in.Date, "[Date]"),
		"Details":       orPlaceholder(in.Details, "[Describe what happened here...]"),
		"ViolationText": violationText,
		"Law":           lawReference,
	}

	var b strings.Builder
	if err := complaintTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render complaint: %w", err)
	}
	return b.String(), nil
}

// AuthorizationLetter renders an authorization letter allowing a
// representative to claim the principal's privileges.
func AuthorizationLetter(in AuthorizationInput) (string, error) {
	purposeText, ok := purposeTexts[in.Purpose]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPurpose, in.Purpose)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	data := map[string]string{
		"PrincipalName":  orPlaceholder(in.PrincipalName, "________________"),
		"PrincipalID":    orPlaceholder(in.PrincipalID, "________________"),
		"Representative": orPlaceholder(in.Representative, "________________"),
		"Relation":       orPlaceholder(in.Relation, "representative"),
		"PurposeText":    purposeText,
		"Date":           date.Format("January 2, 2006"),
	}

	var b strings.Builder
	if err := authorizationTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render authorization: %w", err)
	}
	return b.String(), nil
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
