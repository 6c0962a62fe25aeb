package domain

import "strings"

// UserRecord holds the structured facts collected about a prospect.
// Every field is independently optional; absence is the empty string,
// never null, so merge and validation stay uniform.
type UserRecord struct {
	// Identity
	Name              string `json:"user_name"`
	Phone             string `json:"user_phone_number"`
	Email             string `json:"user_email"`
	ContactPreference string `json:"user_contact_preference"`

	// Intent
	BuyingOrSelling string `json:"user_buying_or_selling"`
	Timeline        string `json:"user_timeline"`
	Urgency         string `json:"user_urgency"`
	ExperienceLevel string `json:"user_experience_level"`

	// Seller property attributes
	PropertyAddress string `json:"user_property_address"`
	PropertyType    string `json:"user_property_type"`
	YearBuilt       string `json:"user_year_built"`
	SquareFootage   string `json:"user_square_footage"`
	Bedrooms        string `json:"user_number_of_bedrooms"`
	Bathrooms       string `json:"user_number_of_bathrooms"`
	LotSize         string `json:"user_lot_size"`
	Renovations     string `json:"user_recent_renovations_or_upgrades"`
	Condition       string `json:"user_current_condition_assessment"`

	// Buyer preferences
	TargetAreas         string `json:"user_target_areas"`
	BudgetRange         string `json:"user_budget_range"`
	PropertyPreferences string `json:"user_property_preferences"`
	FinancingStatus     string `json:"user_financing_status"`

	// Free-text context
	Motivation string `json:"user_motivation"`
	Concerns   string `json:"user_concerns"`
}

// RequiredFields lists the wire names of the fields a lead must provide,
// in the order the conversation collects them.
var RequiredFields = []string{
	"user_name",
	"user_email",
	"user_phone_number",
	"user_buying_or_selling",
}

// AllFields lists every wire name in canonical declaration order.
var AllFields = []string{
	"user_name",
	"user_phone_number",
	"user_email",
	"user_contact_preference",
	"user_buying_or_selling",
	"user_timeline",
	"user_urgency",
	"user_experience_level",
	"user_property_address",
	"user_property_type",
	"user_year_built",
	"user_square_footage",
	"user_number_of_bedrooms",
	"user_number_of_bathrooms",
	"user_lot_size",
	"user_recent_renovations_or_upgrades",
	"user_current_condition_assessment",
	"user_target_areas",
	"user_budget_range",
	"user_property_preferences",
	"user_financing_status",
	"user_motivation",
	"user_concerns",
}

// Field returns the value of a field by its wire name. Unknown names
// return the empty string.
func (r *UserRecord) Field(name string) string {
	switch name {
	case "user_name":
		return r.Name
	case "user_phone_number":
		return r.Phone
	case "user_email":
		return r.Email
	case "user_contact_preference":
		return r.ContactPreference
	case "user_buying_or_selling":
		return r.BuyingOrSelling
	case "user_timeline":
		return r.Timeline
	case "user_urgency":
		return r.Urgency
	case "user_experience_level":
		return r.ExperienceLevel
	case "user_property_address":
		return r.PropertyAddress
	case "user_property_type":
		return r.PropertyType
	case "user_year_built":
		return r.YearBuilt
	case "user_square_footage":
		return r.SquareFootage
	case "user_number_of_bedrooms":
		return r.Bedrooms
	case "user_number_of_bathrooms":
		return r.Bathrooms
	case "user_lot_size":
		return r.LotSize
	case "user_recent_renovations_or_upgrades":
		return r.Renovations
	case "user_current_condition_assessment":
		return r.Condition
	case "user_target_areas":
		return r.TargetAreas
	case "user_budget_range":
		return r.BudgetRange
	case "user_property_preferences":
		return r.PropertyPreferences
	case "user_financing_status":
		return r.FinancingStatus
	case "user_motivation":
		return r.Motivation
	case "user_concerns":
		return r.Concerns
	}
	return ""
}

// Set assigns a field by its wire name. Unknown names are ignored.
func (r *UserRecord) Set(name, value string) {
	switch name {
	case "user_name":
		r.Name = value
	case "user_phone_number":
		r.Phone = value
	case "user_email":
		r.Email = value
	case "user_contact_preference":
		r.ContactPreference = value
	case "user_buying_or_selling":
		r.BuyingOrSelling = value
	case "user_timeline":
		r.Timeline = value
	case "user_urgency":
		r.Urgency = value
	case "user_experience_level":
		r.ExperienceLevel = value
	case "user_property_address":
		r.PropertyAddress = value
	case "user_property_type":
		r.PropertyType = value
	case "user_year_built":
		r.YearBuilt = value
	case "user_square_footage":
		r.SquareFootage = value
	case "user_number_of_bedrooms":
		r.Bedrooms = value
	case "user_number_of_bathrooms":
		r.Bathrooms = value
	case "user_lot_size":
		r.LotSize = value
	case "user_recent_renovations_or_upgrades":
		r.Renovations = value
	case "user_current_condition_assessment":
		r.Condition = value
	case "user_target_areas":
		r.TargetAreas = value
	case "user_budget_range":
		r.BudgetRange = value
	case "user_property_preferences":
		r.PropertyPreferences = value
	case "user_financing_status":
		r.FinancingStatus = value
	case "user_motivation":
		r.Motivation = value
	case "user_concerns":
		r.Concerns = value
	}
}

// HasField reports whether the named field is non-empty after trimming.
func (r *UserRecord) HasField(name string) bool {
	return strings.TrimSpace(r.Field(name)) != ""
}

// RequiredFilled counts how many required fields are non-empty.
func (r *UserRecord) RequiredFilled() int {
	n := 0
	for _, f := range RequiredFields {
		if r.HasField(f) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no identifying field has been collected yet.
// Sessions with empty records are skipped by duplicate comparison.
func (r *UserRecord) IsEmpty() bool {
	return strings.TrimSpace(r.Name) == "" &&
		strings.TrimSpace(r.Email) == "" &&
		strings.TrimSpace(r.Phone) == ""
}
