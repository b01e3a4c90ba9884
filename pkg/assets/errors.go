package assets

import "fmt"

// NotFoundError reports a charge id absent from the provider's catalog.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("assets: charge %q not found", e.ID)
}

// FetchError reports an I/O failure while retrieving an asset that does
// exist (or whose existence could not be determined).
type FetchError struct {
	ID  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("assets: fetch charge %q: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
