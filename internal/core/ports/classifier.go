package ports

import "go.trai.ch/weave/internal/core/domain"

// LocalityClassifier decides whether a type belongs to this build unit.
// Implementations work on a snapshot taken at session construction; a type
// added to the local output afterwards stays invisible.
//
//go:generate mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type LocalityClassifier interface {
	// Classify returns LOCAL for types compiled by this build unit and
	// EXTERNAL for everything else.
	Classify(name domain.TypeName) domain.Locality
}
