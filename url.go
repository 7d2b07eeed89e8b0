package coral

import (
	"fmt"
	"net/url"
)

// BuildURL resolves an endpoint's target URL. The path is joined to
// the base with path-component semantics, so duplicate or missing
// separators between the two are handled. Query parameters are added
// as query items on top of any the base already carries; if the
// existing query string is malformed, the bare base+path URL is
// returned instead of failing the call.
func BuildURL(e Endpoint) (*url.URL, error) {
	base, err := url.Parse(e.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	target := base
	if p := e.Path(); p != "" {
		target = base.JoinPath(p)
	}

	params := e.QueryParams()
	if len(params) == 0 {
		return target, nil
	}

	query, err := url.ParseQuery(target.RawQuery)
	if err != nil {
		return target, nil
	}
	for k, v := range params {
		query.Add(k, v)
	}
	target.RawQuery = query.Encode()

	return target, nil
}
