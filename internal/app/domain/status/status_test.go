package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  CreateParams
		wantErr bool
	}{
		{name: "valid", params: CreateParams{UserID: "u1", UserName: "alice"}},
		{name: "valid_with_content", params: CreateParams{UserID: "u1", UserName: "alice", Content: "hi", MediaURL: "http://x/y.mp4"}},
		{name: "missing_user_id", params: CreateParams{UserName: "alice"}, wantErr: true},
		{name: "whitespace_user_id", params: CreateParams{UserID: " \t", UserName: "alice"}, wantErr: true},
		{name: "missing_user_name", params: CreateParams{UserID: "u1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatus_Live(t *testing.T) {
	expires := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s := &Status{ExpiresAt: expires}

	assert.True(t, s.Live(expires.Add(-time.Second)))
	// The boundary instant is already expired.
	assert.False(t, s.Live(expires))
	assert.False(t, s.Live(expires.Add(time.Second)))
}
