package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	testCases := []struct {
		name    string
		from    string
		mail    Mail
		wantErr bool
	}{
		{
			name: "ok",
			from: "shop@example.com",
			mail: Mail{To: "asha@example.com", Subject: "hi", HTML: "<p>hi</p>", Text: "hi"},
		},
		{
			name:    "bad sender",
			from:    "not an address",
			mail:    Mail{To: "asha@example.com"},
			wantErr: true,
		},
		{
			name:    "bad recipient",
			from:    "shop@example.com",
			mail:    Mail{To: ""},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := buildMessage(tc.from, tc.mail)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"<asha@example.com>"}, msg.GetToString())
		})
	}
}

func TestWhatsappAddress(t *testing.T) {
	assert.Equal(t, "whatsapp:+911234", whatsappAddress("+911234"))
	assert.Equal(t, "whatsapp:+911234", whatsappAddress(" whatsapp:+911234 "))
}
