package foodnow

// Version information for the FoodNow client library
const (
	// Version is the current library version
	Version = "development"

	// APIVersion is the backend API generation this client speaks
	APIVersion = "v1"
)
