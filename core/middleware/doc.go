// Package middleware groups the Fiber middleware used by the serve command.
//
//   - auth: rejects requests without the configured API key.
//   - rayid: tags every request with a ray ID for log correlation.
package middleware
