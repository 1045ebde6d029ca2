package codes

import (
	"net/http"

	"github.com/gogf/gf/v2/errors/gcode"
)

// Error codes for the transcription service. The response middleware maps
// these onto HTTP statuses; everything unrecognized falls back to 500.
var (
	CodeUnsupportedMedia = gcode.New(40001, "unsupported media", nil)
	CodeAuthRequired     = gcode.New(40101, "authentication required", nil)
	CodeAuthInvalid      = gcode.New(40102, "invalid or expired token", nil)
	CodeNotFound         = gcode.New(40401, "not found", nil)
	CodeProcessingFailed = gcode.New(50001, "processing failed", nil)
	CodeTimeout          = gcode.New(50002, "processing timed out", nil)
)

// HTTPStatus resolves the HTTP status for an error code.
func HTTPStatus(code gcode.Code) int {
	switch code {
	case CodeUnsupportedMedia, gcode.CodeValidationFailed, gcode.CodeInvalidParameter, gcode.CodeMissingParameter:
		return http.StatusBadRequest
	case CodeAuthRequired, CodeAuthInvalid:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
