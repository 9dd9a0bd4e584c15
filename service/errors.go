package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("you must be signed in to submit a shipment request")
	ErrProfileNotFound  = errors.New("user profile not found, please complete your profile before submitting")
	ErrPersistence      = errors.New("could not submit shipment request, please retry")
)
