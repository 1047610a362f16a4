package models

import "time"

// RawJob is the job record exactly as the backend returns it. Several of the
// custom attribute fields are duck-typed upstream (list or newline-delimited
// string), so they are declared as FlexibleStrings and resolved by the
// transform layer before anything else sees them.
type RawJob struct {
	Name               string          `json:"name"`
	Company            string          `json:"company"`
	RequisitionID      string          `json:"requisition_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Addresses          []string        `json:"addresses"`
	ApplicationInfo    ApplicationInfo `json:"application_info"`
	CustomAttributes   RawCustomAttrs  `json:"custom_attributes"`
	LanguageCode       string          `json:"language_code,omitempty"`
	Visibility         int             `json:"visibility,omitempty"`
	PostingPublishTime int64           `json:"posting_publish_time"` // epoch seconds
	PostingExpireTime  int64           `json:"posting_expire_time"`  // epoch seconds
	PostingCreateTime  int64           `json:"posting_create_time,omitempty"`
	PostingUpdateTime  int64           `json:"posting_update_time,omitempty"`
	CompanyDisplayName string          `json:"company_display_name"`
	DerivedInfo        RawDerivedInfo  `json:"derived_info"`
}

// RawCustomAttrs carries the backend's loosely typed custom attributes.
type RawCustomAttrs struct {
	ExperienceLevel         []string        `json:"experience_level,omitempty"`
	Responsibilities        FlexibleStrings `json:"responsibilities,omitempty"`
	PreferredQualifications FlexibleStrings `json:"preferred_qualifications,omitempty"`
	MinimumQualifications   FlexibleStrings `json:"minimum_qualifications,omitempty"`
	Location                FlexibleStrings `json:"location,omitempty"`
}

// RawDerivedInfo holds backend-derived location and category data.
type RawDerivedInfo struct {
	Locations     []Location `json:"locations,omitempty"`
	JobCategories []int      `json:"job_categories,omitempty"`
}

// ApplicationInfo holds the application URIs for a job posting.
type ApplicationInfo struct {
	URIs []string `json:"uris"`
}

// Location is a backend-derived geo record attached to a job.
type Location struct {
	LocationType  int           `json:"location_type,omitempty"`
	PostalAddress PostalAddress `json:"postal_address"`
	LatLng        LatLng        `json:"lat_lng,omitempty"`
	RadiusMiles   float64       `json:"radius_miles,omitempty"`
}

type PostalAddress struct {
	RegionCode         string   `json:"region_code,omitempty"`
	PostalCode         string   `json:"postal_code,omitempty"`
	AdministrativeArea string   `json:"administrative_area,omitempty"`
	Locality           string   `json:"locality,omitempty"`
	AddressLines       []string `json:"address_lines,omitempty"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Job is the normalized domain shape consumed by everything downstream of the
// transform layer. The list-or-string custom attributes are always slices
// here; absent fields are empty slices, never nil-vs-present ambiguity the
// caller has to care about.
type Job struct {
	Name               string           `json:"name"`
	Company            string           `json:"company"`
	RequisitionID      string           `json:"requisition_id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Addresses          []string         `json:"addresses"`
	ApplicationInfo    ApplicationInfo  `json:"application_info"`
	CustomAttributes   CustomAttributes `json:"custom_attributes"`
	CompanyDisplayName string           `json:"company_display_name"`
	DerivedInfo        DerivedInfo      `json:"derived_info"`
	Location           string           `json:"location"`
	PostingDate        time.Time        `json:"posting_date"`
	ExpiryDate         time.Time        `json:"expiry_date"`
	// SessionID is the opaque screening-session token forwarded from a
	// detail fetch; empty for list/search results.
	SessionID string `json:"session,omitempty"`
}

// CustomAttributes is the fully normalized counterpart of RawCustomAttrs.
type CustomAttributes struct {
	ExperienceLevel         []string `json:"experience_level"`
	Responsibilities        []string `json:"responsibilities"`
	PreferredQualifications []string `json:"preferred_qualifications"`
	MinimumQualifications   []string `json:"minimum_qualifications"`
	Location                []string `json:"location"`
}

// DerivedInfo mirrors RawDerivedInfo with defaults applied.
type DerivedInfo struct {
	Locations     []Location `json:"locations"`
	JobCategories []int      `json:"job_categories"`
}
