package constants

// Goal categories are a fixed organizational set, shared globally.
var CategoryNames = []string{
	"business",
	"hr",
	"management",
	"warehouse",
	"maintenance",
	"marketing",
	"after_sales",
	"admin",
}

// DefaultCategoryName is applied when a task is created without a goal.
const DefaultCategoryName = "business"
