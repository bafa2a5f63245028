// ABOUTME: Ordered form parameters for mutating reader requests
// ABOUTME: Encoding joins k=v pairs verbatim, matching the service's expectation

package reader

import "strings"

// Param is one form parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Presence of params turns a request
// into a form-encoded POST; order and values are preserved exactly as given.
type Params []Param

// Add appends a parameter and returns the extended list.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode renders the list as a form body. Values are taken verbatim; the
// service expects this exact shape, so no additional escaping is applied.
func (p Params) Encode() string {
	pairs := make([]string, 0, len(p))
	for _, param := range p {
		pairs = append(pairs, param.Key+"="+param.Value)
	}
	return strings.Join(pairs, "&")
}
