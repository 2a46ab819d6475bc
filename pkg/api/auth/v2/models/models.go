// -*- fill-column: 90 -*-
// Package models contains the types encapsulating the requests and responses
// exchanged with the auth service of the API server.
package models

import "github.com/xcalibyte/get-token/helpers/mask"

// LoginRequest is the body of a login call
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the decoded body of a successful login call. Fields other than the
// access token are ignored.
type LoginResponse struct {
	AccessToken string `json:"accessToken,omitempty"`
}

// String hides the password, for request logging.
func (r LoginRequest) String() string {
	return "username=(" + r.Username + "), password=(" + mask.MaskValue(r.Password) + ")"
}
