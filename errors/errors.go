package errors

import "fmt"

var (
	ErrEmptyWords        = fmt.Errorf("no words have been found")
	ErrEmptyCorpus       = fmt.Errorf("corpus contains no intent")
	ErrEmptyTrainingSet  = fmt.Errorf("training set is empty")
	ErrDimensionMismatch = fmt.Errorf("vector dimensions do not match the network")
	ErrNotTrained        = fmt.Errorf("classifier has not been trained")
	ErrSnapshotNotFound  = fmt.Errorf("snapshot not found")
	ErrInvalidSnapshot   = fmt.Errorf("invalid snapshot")
	ErrUnsupportedCorpus = fmt.Errorf("corpus file is not JSON")
	ErrInvalidConfig     = fmt.Errorf("invalid configuration")
	ErrUnknownBackend    = fmt.Errorf("unknown snapshot backend")
)
