package dto

import "time"

// VoiceEvent is the loosely-shaped payload delivered by the transcription
// channel. Providers disagree on field names, so text and call id each accept
// several aliases; Normalize picks the first non-empty one.
type VoiceEvent struct {
	Role    string `json:"role"`
	Type    string `json:"type"`
	Text    string `json:"text"`
	// Aliases seen across transcription providers.
	Transcript string `json:"transcript"`
	Content    string `json:"content"`
	CallId     string `json:"call_id"`
	CallIdAlt  string `json:"callId"`

	ReceivedAt time.Time `json:"-"`
}

// UtteranceText returns the first populated text alias.
func (e *VoiceEvent) UtteranceText() string {
	if e.Text != "" {
		return e.Text
	}
	if e.Transcript != "" {
		return e.Transcript
	}
	return e.Content
}

// Call returns the first populated call id alias.
func (e *VoiceEvent) Call() string {
	if e.CallId != "" {
		return e.CallId
	}
	return e.CallIdAlt
}
