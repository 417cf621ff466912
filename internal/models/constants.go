package models

// Categories
const (
	CategoryUncategorized = "Uncategorized"
	CategoryIncome        = "Income"
)

// DateLayout is the storage layout for transaction dates.
const DateLayout = "2006-01-02"

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)
