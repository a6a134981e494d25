// Package models holds the request and response bodies of the AnimeFacts API.
package models

// StatusSuccess is the only envelope status treated as success. The HTTP
// status code of the response is not consulted.
const StatusSuccess = "success"

// Credentials is the JSON body of the signup and login calls. It is built
// from form input and never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Envelope is the response body of the auth API:
//
//	{"status": "success", "data": {"token": "..."}}
//	{"status": "fail", "message": "Email already exists"}
type Envelope struct {
	Status  string        `json:"status"`
	Data    *EnvelopeData `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
}

type EnvelopeData struct {
	Token string `json:"token"`
}

// Succeeded reports whether the server accepted the request.
func (e *Envelope) Succeeded() bool {
	return e != nil && e.Status == StatusSuccess
}

// Token returns the issued token, or "" when the envelope carries none.
func (e *Envelope) Token() string {
	if e == nil || e.Data == nil {
		return ""
	}
	return e.Data.Token
}
