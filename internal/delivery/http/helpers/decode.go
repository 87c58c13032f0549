package helpers

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Decode decodes the request body into dest with DisallowUnknownFields. On failure it
// writes a 400 error and returns false; callers should return immediately.
func Decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeMalformedBody, err.Error())
		return false
	}
	return true
}
