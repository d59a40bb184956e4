package minutes

// InputType values accepted by the submission form.
const (
	InputTypeAudio = "audio"
	InputTypeText  = "text"
)

// ProcessRequest is the submission form. The audio file itself travels as a
// multipart file part and is read separately from the bound fields.
type ProcessRequest struct {
	InputType  string `form:"input_type" validate:"required,oneof=audio text"`
	PastedText string `form:"pasted_text"`
}
