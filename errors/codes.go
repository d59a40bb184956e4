package errors

// ErrorCode identifies the failure class of an AppError.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL             ErrorCode = 1000
	ErrorCode_NOT_FOUND            ErrorCode = 1001
	ErrorCode_VALIDATION_FAILED    ErrorCode = 2000
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_EXTRACTION_FAILED    ErrorCode = 3001
	ErrorCode_RENDER_FAILED        ErrorCode = 4000
)

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_VALIDATION_FAILED:
		return "VALIDATION_FAILED"
	case ErrorCode_TRANSCRIPTION_FAILED:
		return "TRANSCRIPTION_FAILED"
	case ErrorCode_EXTRACTION_FAILED:
		return "EXTRACTION_FAILED"
	case ErrorCode_RENDER_FAILED:
		return "RENDER_FAILED"
	default:
		return "UNKNOWN"
	}
}
