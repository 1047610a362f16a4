// Package transform converts raw backend job records into the normalized
// domain shape the rest of the application consumes.
package transform

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"talentreq-client/internal/models"
)

const defaultLocation = "Remote"

// Normalize converts a raw backend job record into the domain Job. The
// optional sessionID is the opaque screening token forwarded from a detail
// fetch; list results pass an empty string. Pure: the same input always
// yields a deep-equal output.
func Normalize(raw models.RawJob, sessionID string) models.Job {
	return models.Job{
		Name:            raw.Name,
		Company:         raw.Company,
		RequisitionID:   raw.RequisitionID,
		Title:           raw.Title,
		Description:     raw.Description,
		Addresses:       copyStrings(raw.Addresses),
		ApplicationInfo: models.ApplicationInfo{URIs: copyStrings(raw.ApplicationInfo.URIs)},
		CustomAttributes: models.CustomAttributes{
			ExperienceLevel:         copyStrings(raw.CustomAttributes.ExperienceLevel),
			Responsibilities:        normalizeList(raw.CustomAttributes.Responsibilities),
			PreferredQualifications: normalizeList(raw.CustomAttributes.PreferredQualifications),
			MinimumQualifications:   normalizeList(raw.CustomAttributes.MinimumQualifications),
			Location:                normalizeList(raw.CustomAttributes.Location),
		},
		CompanyDisplayName: raw.CompanyDisplayName,
		DerivedInfo: models.DerivedInfo{
			Locations:     copyLocations(raw.DerivedInfo.Locations),
			JobCategories: copyInts(raw.DerivedInfo.JobCategories),
		},
		Location:    resolveLocation(raw),
		PostingDate: epochToTime(raw.PostingPublishTime),
		ExpiryDate:  epochToTime(raw.PostingExpireTime),
		SessionID:   sessionID,
	}
}

// normalizeList resolves the backend's list-or-string ambiguity: a list
// passes through unchanged, a string is split on newlines with empty
// segments dropped, an absent field becomes an empty list.
func normalizeList(f models.FlexibleStrings) []string {
	if !f.Present() {
		return []string{}
	}
	if !f.IsString {
		return copyStrings(f.Values)
	}

	parts := strings.Split(f.Raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveLocation applies the display-location policy, first match wins:
// derived postal address, then the first custom location entry, then the
// "Remote" fallback.
func resolveLocation(raw models.RawJob) string {
	if len(raw.DerivedInfo.Locations) > 0 {
		addr := raw.DerivedInfo.Locations[0].PostalAddress
		return fmt.Sprintf("%s, %s", addr.Locality, addr.AdministrativeArea)
	}

	loc := raw.CustomAttributes.Location
	if loc.Present() && !loc.IsString && len(loc.Values) > 0 {
		return loc.Values[0]
	}

	return defaultLocation
}

// epochToTime derives a timestamp from backend epoch seconds. The backend
// contract is seconds scaled to milliseconds; no timezone adjustment.
func epochToTime(epochSeconds int64) time.Time {
	return time.UnixMilli(epochSeconds * 1000).UTC()
}

// SortNewestFirst orders jobs by posting date descending. The sort is stable
// so equal timestamps keep their backend order.
func SortNewestFirst(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].PostingDate.After(jobs[j].PostingDate)
	})
}

func copyStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyInts(in []int) []int {
	if in == nil {
		return []int{}
	}
	out := make([]int, len(in))
	copy(out, in)
	return out
}

func copyLocations(in []models.Location) []models.Location {
	if in == nil {
		return []models.Location{}
	}
	out := make([]models.Location, len(in))
	copy(out, in)
	return out
}
