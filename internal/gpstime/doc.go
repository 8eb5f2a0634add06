package gpstime

// Package gpstime provides a GPS time scale value type plus two helpers used by
// navigation-message tooling:
// - Arange builds an evenly spaced, half-open sequence of GPSTimes
// - ValidateGPSWeek checks a full week number against its 10-bit broadcast form
