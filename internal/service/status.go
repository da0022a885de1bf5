package service

// Status is the finite result code surfaced by every service operation.
// Storage faults are logged and collapse to StatusFailed at this layer,
// nothing below the services swallows an error.
type Status string

const (
	StatusSuccess       Status = "SUCCESS"
	StatusAlreadyExists Status = "ALREADY_EXISTS"
	StatusFailed        Status = "FAILED"
	StatusUpdated       Status = "UPDATED"
	StatusDeleted       Status = "DELETED"
	StatusNotFound      Status = "NOT_FOUND"
)
