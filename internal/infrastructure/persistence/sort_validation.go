package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// PropertySortFields contains allowed sort fields for properties
var PropertySortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"title":         true,
	"price":         true,
	"location":      true,
	"property_type": true,
	"status":        true,
	"bedrooms":      true,
	"bathrooms":     true,
	"area_sqft":     true,
	"is_featured":   true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"email":         true,
	"full_name":     true,
	"status":        true,
	"last_login_at": true,
}

// BlogPostSortFields contains allowed sort fields for blog posts
var BlogPostSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"title":        true,
	"category":     true,
	"published":    true,
	"published_at": true,
}

// InquirySortFields contains allowed sort fields for inquiries
var InquirySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
	"status":     true,
}
