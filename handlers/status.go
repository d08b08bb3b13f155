// Package handlers holds helpers shared by the HTTP handlers in its sub-packages.
package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/deputados/camara"
)

// UpstreamStatus maps an error from the Chamber API to the status code returned to callers.
// A missing upstream resource is a 404, anything else is a bad gateway.
func UpstreamStatus(err error) int {
	var se camara.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
