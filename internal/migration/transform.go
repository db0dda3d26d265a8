package migration

import "github.com/dashport/dashport/internal/models"

// Transform strips the identity and ownership fields a dashboard must
// not carry into another tenant, and optionally renames it. Everything
// else in the document passes through untouched.
func Transform(doc models.Document, newName string) models.Document {
	doc.Remove("id")
	doc.Remove("dashboardMetadata", "owner")
	if newName != "" {
		doc.Set(newName, "dashboardMetadata", "name")
	}
	return doc
}
