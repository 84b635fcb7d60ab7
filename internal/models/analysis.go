package models

// AnalysisResult is the JSON object parsed out of the model's reply, plus
// the server-added "raw_text_preview" and "result_id" fields. The model's
// fields ("score", "feedback" and anything else it emits) are kept exactly
// as parsed; no typing is enforced beyond the JSON parse itself.
type AnalysisResult map[string]any

type RewriteRequest struct {
	Text     string `json:"text"`
	JobTitle string `json:"job_title"`
}

type RewriteResponse struct {
	OptimizedText string `json:"optimized_text"`
}

type DownloadRequest struct {
	Text string `json:"text"`
}

type CheckoutRequest struct {
	OriginURL string `json:"origin_url"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}
