package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// CodeRateLimited is returned with 429 responses.
const CodeRateLimited domain.ErrorCode = "RATE_LIMITED"

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError writes the same {"error","code"} body the REST handlers use,
// so clients see one error shape regardless of which layer rejected them.
func writeError(w http.ResponseWriter, status int, code domain.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message, Code: code.String()}) //nolint:errcheck
}
