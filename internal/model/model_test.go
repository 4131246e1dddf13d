package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchEmailInputRequiresFields(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{name: "missing from", in: `{"to":["a@x.com"],"subject":"s"}`, wantErr: `missing field "from"`},
		{name: "missing to", in: `{"from":"f@x.com","subject":"s"}`, wantErr: `missing field "to"`},
		{name: "missing subject", in: `{"from":"f@x.com","to":["a@x.com"]}`, wantErr: `missing field "subject"`},
		{name: "to not a list", in: `{"from":"f@x.com","to":"a@x.com","subject":"s"}`, wantErr: "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BatchEmailInput
			err := json.Unmarshal([]byte(tt.in), &b)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBatchEmailInputMessage(t *testing.T) {
	var b BatchEmailInput
	require.NoError(t, json.Unmarshal([]byte(`{"from":"f@x.com","to":["a@x.com","b@x.com"],"subject":"hi","text":"body"}`), &b))

	m := b.Message()
	assert.Equal(t, "f@x.com", m.From)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, m.To)
	assert.Equal(t, "hi", m.Subject)
	assert.Nil(t, m.HTML)
	require.NotNil(t, m.Text)
	assert.Equal(t, "body", *m.Text)
}
