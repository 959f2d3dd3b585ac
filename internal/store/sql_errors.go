package store

// ErrorClassification is the driver-independent meaning of a failed statement.
type ErrorClassification int

const (
	// Unclassified covers nil errors and everything without a dedicated class.
	Unclassified ErrorClassification = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	// Transient marks connection loss and similar conditions.
	Transient
)

// ErrorClassifier maps a driver error to an [ErrorClassification] so that
// repositories stay dialect agnostic.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}
