package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmailRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		req     SendEmailRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  SendEmailRequest{To: "delivered@resend.dev", Subject: "hi", Body: "body"},
		},
		{
			name: "empty subject is allowed",
			req:  SendEmailRequest{To: "delivered@resend.dev", Body: "body"},
		},
		{
			name:    "missing recipient",
			req:     SendEmailRequest{Body: "body"},
			wantErr: "to is required",
		},
		{
			name:    "whitespace recipient",
			req:     SendEmailRequest{To: "   "},
			wantErr: "to is required",
		},
		{
			name:    "recipient without at sign",
			req:     SendEmailRequest{To: "nope"},
			wantErr: "must be an email address",
		},
		{
			name:    "recipient too long",
			req:     SendEmailRequest{To: strings.Repeat("a", 320) + "@x.com"},
			wantErr: "cannot exceed 320",
		},
		{
			name:    "subject too long",
			req:     SendEmailRequest{To: "delivered@resend.dev", Subject: strings.Repeat("s", 999)},
			wantErr: "cannot exceed 998",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSendEmailRequest_Validate_TrimsRecipient(t *testing.T) {
	t.Parallel()
	req := SendEmailRequest{To: "  delivered@resend.dev  "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "delivered@resend.dev", req.To)
}

func TestParseDeliveryState(t *testing.T) {
	t.Parallel()

	state, ok := ParseDeliveryState("Delivered")
	assert.True(t, ok)
	assert.Equal(t, DeliveryStateDelivered, state)

	state, ok = ParseDeliveryState("  bounced ")
	assert.True(t, ok)
	assert.Equal(t, DeliveryStateBounced, state)

	_, ok = ParseDeliveryState("exploded")
	assert.False(t, ok)
}

func TestDeliveryState_Terminal(t *testing.T) {
	t.Parallel()
	assert.True(t, DeliveryStateDelivered.Terminal())
	assert.True(t, DeliveryStateFailed.Terminal())
	assert.False(t, DeliveryStateQueued.Terminal())
	assert.False(t, DeliveryStateSent.Terminal())
}

func TestCreateSentEmailRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateSentEmailRequest{OwnerID: "u1", DeliveryID: "re_1", Recipient: "a@b.com"}
	assert.NoError(t, valid.Validate())

	// Subject may be empty; ownership and delivery linkage may not.
	missingOwner := CreateSentEmailRequest{DeliveryID: "re_1", Recipient: "a@b.com"}
	assert.Error(t, missingOwner.Validate())

	missingDelivery := CreateSentEmailRequest{OwnerID: "u1", Recipient: "a@b.com"}
	assert.Error(t, missingDelivery.Validate())
}
