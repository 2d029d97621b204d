package dto

import "encoding/json"

type RealtimeCallRequest struct {
	Sdp string `json:"sdp" validate:"required"`
}

type RealtimeCallResponse struct {
	AnswerSdp    string `json:"answerSdp"`
	CallLocation string `json:"callLocation"`
}

type RealtimeTokenResponse struct {
	// Session is the upstream credential payload, passed through verbatim.
	Session json.RawMessage `json:"session"`
}
