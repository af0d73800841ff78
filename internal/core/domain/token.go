package domain

import "errors"

// Token verification failures. A token is valid until expiry; there is no
// revocation list.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")
