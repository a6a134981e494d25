package common

// RequestIDHeaderName is the HTTP header used to correlate outbound API
// calls with client log lines.
const RequestIDHeaderName = "X-Request-ID"

// MinPasswordLength is the shortest password the signup form accepts.
const MinPasswordLength = 5
