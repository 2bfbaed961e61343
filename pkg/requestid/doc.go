// Package requestid correlates a note client's requests with the server
// log records they produce.
//
// On the server, Middleware reuses a well-formed X-Request-ID sent by the
// client (letters, digits, '-' and '_', at most 128 bytes) or generates a
// UUID, stores it in the request context and echoes it in the response.
// LoggerExtractor copies it into every record logged with that context.
//
// On the client, Transport sends the id found in the request context, or a
// fresh one, so a failed save can be matched to the server's WARN line
// through StatusError.RequestID in pkg/noteclient.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
//	client := &http.Client{Transport: requestid.Transport(nil)}
package requestid
