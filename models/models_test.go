package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Normalize(t *testing.T) {
	assert.Equal(t, CategoryNCERT, CategoryNCERT.Normalize())
	assert.Equal(t, CategoryOthers, Category("made-up").Normalize())
	assert.Equal(t, CategoryOthers, Category("").Normalize())
}

func TestCategory_DisplayName(t *testing.T) {
	assert.Equal(t, "PW Notes", CategoryPWNotes.DisplayName())
	assert.Equal(t, "Others", Category("garbage").DisplayName())
}

func TestRecord_StripPayload(t *testing.T) {
	rec := Record{
		ID:        "1",
		Payload:   "data:application/pdf;base64,AA==",
		Residency: ResidencyFull,
	}

	stripped := rec.StripPayload()
	assert.Empty(t, stripped.Payload)
	assert.Equal(t, ResidencySessionOnly, stripped.Residency)
	assert.True(t, stripped.HasPayload())

	// The receiver is untouched.
	assert.NotEmpty(t, rec.Payload)
	assert.Equal(t, ResidencyFull, rec.Residency)
}

func TestRecord_HasPayload(t *testing.T) {
	rec := Record{Residency: ResidencyAbsent}
	assert.False(t, rec.HasPayload())
}

func TestEncodeDecodePayload(t *testing.T) {
	content := []byte("%PDF-1.4 minimal")

	payload := EncodePayload(content)
	assert.Contains(t, payload, "data:application/pdf;base64,")

	got, err := DecodePayload(payload)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDecodePayload_Malformed(t *testing.T) {
	_, err := DecodePayload("text/plain;AAAA")
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = DecodePayload("data:application/pdf;base64,not-base64!!!")
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestSession_LoggedIn(t *testing.T) {
	assert.False(t, Session{}.LoggedIn())
	assert.True(t, Session{CurrentUser: "admin@pdfplace.com"}.LoggedIn())
}
