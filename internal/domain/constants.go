package domain

// Business validation constants
const (
	MaxNameLength = 100
)

// DefaultDays is the fallback header used when the slot table carries no
// day labels of its own. Matches the sheet the service was built around.
var DefaultDays = []string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì"}
