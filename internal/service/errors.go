package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrNoWaypoints       = errors.New("itinerary has no waypoints")
	ErrInvalidTravelMode = errors.New("invalid travel mode")

	ErrUnknownMessage = errors.New("unknown message")

	ErrCacheInstallFailed = errors.New("asset cache install failed")
	ErrInvalidAsset       = errors.New("asset response is not cacheable")
	ErrAssetNotCached     = errors.New("asset is not cached")

	ErrSyncPassFailed = errors.New("sync pass failed")
)
