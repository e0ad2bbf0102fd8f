package catalog

import "fmt"

// DataSourceError reports that the item list could not be obtained: the data
// file is missing or unreadable, or its contents do not parse.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
