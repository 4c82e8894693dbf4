package ports

import "net/http"

// HTTPClient executes image service requests.
// *http.Client satisfies this interface; tests substitute a stub.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
