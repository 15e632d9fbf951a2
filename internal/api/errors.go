package api

import (
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
)

// ErrorKind enumerates every failure the API can answer with. Each kind
// maps onto exactly one wire response; the table below is the single
// source of truth for status codes and bodies, so the contract stays
// auditable in one place.
type ErrorKind int

const (
	// KindInvalidInput is a request payload that failed schema validation
	// (or could not be decoded at all).
	KindInvalidInput ErrorKind = iota

	// KindDuplicateUser is a signup whose username is already taken. The
	// same response also serves as the fault fallback for the auth
	// endpoints: any persistence or signing failure during signup/signin
	// collapses onto it. The message talks about an "email id" because
	// the signup schema expects the username to be an email address.
	KindDuplicateUser

	// KindInvalidCredentials is a signin whose conjunctive
	// username/password/name lookup matched no user.
	KindInvalidCredentials

	// KindNotLoggedIn is a blog request with no usable caller identity:
	// missing authorization header, or a verified token carrying no id.
	KindNotLoggedIn

	// KindAuthError is a blog request whose token failed verification
	// (malformed or bad signature).
	KindAuthError

	// KindPersistenceFault is any datastore failure on the blog routes.
	KindPersistenceFault
)

// wireResponse describes how one error kind is answered on the wire.
type wireResponse struct {
	status int
	json   bool
	body   string
}

// The contract produces only statuses 200, 403, and 411. 411 doubles as
// the validation-failure and fault status; that overload is part of the
// published behavior and is preserved here.
var wireResponses = map[ErrorKind]wireResponse{
	KindInvalidInput:       {status: http.StatusLengthRequired, json: true, body: "Wrong Inputs"},
	KindDuplicateUser:      {status: http.StatusLengthRequired, json: false, body: "User with this email id already exists"},
	KindInvalidCredentials: {status: http.StatusForbidden, json: false, body: "Incorrect credentials"},
	KindNotLoggedIn:        {status: http.StatusForbidden, json: true, body: "You are not logged in"},
	KindAuthError:          {status: http.StatusForbidden, json: true, body: "Authentication Error"},
	KindPersistenceFault:   {status: http.StatusLengthRequired, json: true, body: "Error while fetching blog post"},
}

// RespondWithKind writes the wire response for the given error kind.
func RespondWithKind(w http.ResponseWriter, r *http.Request, kind ErrorKind) {
	resp, ok := wireResponses[kind]
	if !ok {
		// Unknown kinds fall back to the persistence fault shape rather
		// than inventing a status outside the contract.
		resp = wireResponses[KindPersistenceFault]
	}

	if resp.json {
		shared.RespondWithJSON(w, r, resp.status, shared.MessageResponse{Message: resp.body})
		return
	}
	shared.RespondWithText(w, r, resp.status, resp.body)
}
