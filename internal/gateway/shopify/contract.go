package shopify

import "net/http"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
