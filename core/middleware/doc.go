// Package middleware groups the fiber middleware used by the server.
//
//   - rayid tags every request with an X-Ray-ID, reusing one sent by the
//     caller, and stores it in the fiber locals for logger.WithRayID.
//   - auth rejects requests without the configured API key. It is only
//     installed when server.api_key is set.
package middleware
