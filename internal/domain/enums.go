package domain

type ClaimStatus string

const (
	StatusSubmitted  ClaimStatus = "SUBMITTED"
	StatusReviewing  ClaimStatus = "REVIEWING"
	StatusScheduling ClaimStatus = "SCHEDULING"
	StatusScheduled  ClaimStatus = "SCHEDULED"
	StatusCompleted  ClaimStatus = "COMPLETED"
)

// ValidClaimStatuses is the canonical set of accepted claim status strings.
var ValidClaimStatuses = map[string]bool{
	"SUBMITTED": true, "REVIEWING": true, "SCHEDULING": true,
	"SCHEDULED": true, "COMPLETED": true,
}

type Classification string

const (
	ClassUnclassified    Classification = "Unclassified"
	ClassSixtyDay        Classification = "60 Day"
	ClassElevenMonth     Classification = "11 Month"
	ClassNonWarranty     Classification = "Non-Warranty"
	ClassServiceComplete Classification = "Service Complete"
	ClassCourtesyRepair  Classification = "Courtesy Repair (Non-Warranty)"
	ClassDuplicate       Classification = "Duplicate"
)

// closingClassifications force a claim to COMPLETED regardless of any
// in-progress scheduling state.
var closingClassifications = map[Classification]bool{
	ClassNonWarranty:     true,
	ClassServiceComplete: true,
	ClassCourtesyRepair:  true,
	ClassDuplicate:       true,
}

func (c Classification) IsClosing() bool {
	return closingClassifications[c]
}

// RequiresExplanation reports whether the classification denies warranty
// coverage and therefore needs a written justification on record.
func (c Classification) RequiresExplanation() bool {
	return c == ClassNonWarranty || c == ClassCourtesyRepair
}

type TimeSlot string

const (
	SlotAM     TimeSlot = "AM"
	SlotPM     TimeSlot = "PM"
	SlotAllDay TimeSlot = "ALL_DAY"
)

type DateStatus string

const (
	DateProposed DateStatus = "PROPOSED"
	DateAccepted DateStatus = "ACCEPTED"
	DateRejected DateStatus = "REJECTED"
)

type CommenterRole string

const (
	RoleHomeowner  CommenterRole = "HOMEOWNER"
	RoleAdmin      CommenterRole = "ADMIN"
	RoleContractor CommenterRole = "CONTRACTOR"
)

// MessageAudience identifies which party an audit message was sent to.
type MessageAudience string

const (
	AudienceHomeowner     MessageAudience = "HOMEOWNER"
	AudienceSubcontractor MessageAudience = "SUBCONTRACTOR"
)
