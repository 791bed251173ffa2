package smoke

// HTTP status code constants.
const (
	StatusOK = 200
)

// Accuracy bounds for pass precision, in percent.
const (
	MinAccuracy = 0.0
	MaxAccuracy = 100.0
)
