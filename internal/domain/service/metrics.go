package service

// DomainMetrics records business events.
type DomainMetrics interface {
	CampgroundCreated()
	ReviewCreated()
	GeocodeFallback()
}
