package model

const (
	EntityName = "booking_session"

	CacheKeySession     = "booking:session"
	CacheKeySessionLock = "booking:session:lock"
)
