package model

// LoadStatus represents the state of the meal catalog load
type LoadStatus string

const (
	// LoadStatusIdle means no load has been requested yet
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means the meal list or thumbnails are being fetched
	LoadStatusLoading LoadStatus = "Loading"

	// LoadStatusReady means the catalog holds the latest meal list
	LoadStatusReady LoadStatus = "Ready"

	// LoadStatusPartial means the meal list loaded but some thumbnails failed
	LoadStatusPartial LoadStatus = "Partial"

	// LoadStatusError means the meal list could not be loaded
	LoadStatusError LoadStatus = "Error"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsBusy returns true while a load is in flight
func (ls LoadStatus) IsBusy() bool {
	return ls == LoadStatusLoading
}

// HasMeals returns true if the catalog can serve names in this state
func (ls LoadStatus) HasMeals() bool {
	return ls == LoadStatusReady || ls == LoadStatusPartial
}
