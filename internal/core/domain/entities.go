package domain

import (
	"strings"
	"time"
)

// BloodGroup is one of the eight ABO/Rh groups
type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
)

// BloodGroups lists every group in selector order
var BloodGroups = []BloodGroup{
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupABPos, BloodGroupABNeg,
	BloodGroupOPos, BloodGroupONeg,
}

// ParseBloodGroup normalizes user or API input ("ab+ ", "O+") to a BloodGroup.
// A space is accepted in place of "+" because query strings decode "+" to " ".
func ParseBloodGroup(s string) (BloodGroup, bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if strings.HasSuffix(s, " ") && !strings.HasSuffix(v, "+") && !strings.HasSuffix(v, "-") {
		v += "+"
	}
	for _, g := range BloodGroups {
		if string(g) == v {
			return g, true
		}
	}
	return BloodGroup(v), false
}

// DonationStatus is the lifecycle state of a donation request (owned by the collaborator)
type DonationStatus string

const (
	StatusPending    DonationStatus = "pending"
	StatusInProgress DonationStatus = "inprogress"
	StatusCompleted  DonationStatus = "completed"
	StatusCancelled  DonationStatus = "cancelled"
)

// Label returns the human readable status tag
func (s DonationStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// DonationRequest is one blood request as returned by the collaborator.
// Records are read-only on this side.
type DonationRequest struct {
	ID                string         `json:"_id"`
	BloodGroup        BloodGroup     `json:"bloodGroup"`
	RecipientName     string         `json:"recipientName"`
	Hospital          string         `json:"hospitalName"`
	RecipientDistrict string         `json:"recipientDistrict"`
	RecipientUpazila  string         `json:"recipientUpazila"`
	Address           string         `json:"fullAddress,omitempty"`
	Message           string         `json:"requestMessage,omitempty"`
	Date              string         `json:"donationDate"`
	Time              string         `json:"donationTime"`
	Status            DonationStatus `json:"donationStatus"`
}

// Normalize trims free-text fields and canonicalizes enumerations
func (r DonationRequest) Normalize() DonationRequest {
	r.ID = strings.TrimSpace(r.ID)
	r.BloodGroup, _ = ParseBloodGroup(string(r.BloodGroup))
	r.RecipientName = strings.TrimSpace(r.RecipientName)
	r.Hospital = strings.TrimSpace(r.Hospital)
	r.RecipientDistrict = strings.TrimSpace(r.RecipientDistrict)
	r.RecipientUpazila = strings.TrimSpace(r.RecipientUpazila)
	r.Address = strings.TrimSpace(r.Address)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Status = DonationStatus(strings.ToLower(strings.TrimSpace(string(r.Status))))
	return r
}

// AnonymousDonor is shown when a funding entry carries no donor name
const AnonymousDonor = "Anonymous"

// Funding is one completed monetary donation
type Funding struct {
	ID         string    `json:"_id,omitempty"`
	DonorName  string    `json:"donorName"`
	DonorEmail string    `json:"donorEmail,omitempty"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paidAt"`
}

// Normalize fills the anonymous donor name
func (f Funding) Normalize() Funding {
	f.DonorName = strings.TrimSpace(f.DonorName)
	if f.DonorName == "" {
		f.DonorName = AnonymousDonor
	}
	f.DonorEmail = strings.TrimSpace(f.DonorEmail)
	return f
}

// Public drops the donor's contact details for the public funding list
func (f Funding) Public() Funding {
	f.DonorEmail = ""
	return f
}

// FundingSummary aggregates all fundings
type FundingSummary struct {
	TotalAmount    float64 `json:"totalAmount"`
	TotalDonations int     `json:"totalDonations"`
}

// CheckoutRequest starts a payment session at the collaborator
type CheckoutRequest struct {
	DonateAmount float64 `json:"donateAmount" validate:"required,gt=0,lte=1000000"`
	DonorEmail   string  `json:"donorEmail" validate:"required,email"`
}

// CheckoutSession is the external payment redirect target
type CheckoutSession struct {
	URL string `json:"url"`
}

// RequestFilter is the filter state of the request listing and search pages
type RequestFilter struct {
	BloodGroup string `json:"bloodGroup" query:"bloodGroup"`
	District   string `json:"district" query:"district"`
	Upazila    string `json:"upazila" query:"upazila"`
}

// ContentFilter is the filter state of the blog and help pages
type ContentFilter struct {
	Category string `json:"category" query:"category"`
	Search   string `json:"search" query:"search"`
}

// BlogPost is a marketing article
type BlogPost struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body,omitempty"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

// FAQ is one help entry
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// ContactMessage is a message sent from the contact page
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" form:"name" validate:"required,max=100"`
	Email     string    `json:"email" form:"email" validate:"required,email,max=150"`
	Subject   string    `json:"subject" form:"subject" validate:"max=150"`
	Message   string    `json:"message" form:"message" validate:"required,min=10,max=5000"`
	CreatedAt time.Time `json:"created_at"`
}

// Location is a district or upazila from the static reference data
type Location struct {
	Name       string `json:"name"`
	DistrictID string `json:"district_id,omitempty"`
	ID         string `json:"id,omitempty"`
}

// Identity is the signed-in visitor as asserted by the auth provider
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
