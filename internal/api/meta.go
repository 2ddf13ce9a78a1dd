// Package api Package classification Docket K8s API.
//
// Docket K8s API serves a fixed greeting on /api/hello and exposes the
// health/readiness, version and swagger endpoints used when the service
// runs under Kubernetes. Configuration comes from environment variables
// and shutdown is graceful.
//
// Schemes: http, https
// BasePath: /
// Version: 1.0.0
// License: MIT http://opensource.org/licenses/MIT
//
// Consumes:
//   - application/json
//
// Produces:
//   - text/plain
//   - application/json
//
// swagger:meta
package api
