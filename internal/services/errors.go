package services

import "errors"

// Failure taxonomy for the analysis pipeline and its external oracles.
// Handlers translate these into HTTP statuses in one place.
var (
	ErrUnsupportedType = errors.New("unsupported file type, please upload a PDF or DOCX")
	ErrEmptyExtraction = errors.New("no text could be extracted from the document")
	ErrLLM             = errors.New("language model request failed")
	ErrNoJSONFound     = errors.New("no JSON object found in model response")
	ErrMalformedJSON   = errors.New("malformed JSON in model response")

	ErrProcessorUnconfigured = errors.New("payment processor is not configured")
	ErrProcessorFailed       = errors.New("payment processor request failed")

	ErrMailUnconfigured = errors.New("mail transport is not configured")
	ErrMailDelivery     = errors.New("mail delivery failed")
)
