package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty config", Config{}},
		{"missing host", Config{Username: "u@example.com", Password: "p"}},
		{"missing username", Config{Host: "smtp.example.com", Password: "p"}},
		{"missing password", Config{Host: "smtp.example.com", Username: "u@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	c, err := New(Config{Host: "smtp.example.com", Username: "u@example.com", Password: "p"})
	require.NoError(t, err)
	require.Equal(t, 587, c.cfg.Port)
	require.Equal(t, "u@example.com", c.cfg.From)
}

func TestNew_KeepsExplicitFrom(t *testing.T) {
	c, err := New(Config{
		Host:     "smtp.example.com",
		Port:     2525,
		Username: "u@example.com",
		Password: "p",
		From:     "results@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, 2525, c.cfg.Port)
	require.Equal(t, "results@example.com", c.cfg.From)
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("from@example.com", "to@example.com",
		"TOPSIS Result", "Attached.", "topsis_result.csv", []byte("a,b\n1,2\n"))
	require.NoError(t, err)
	require.NotNil(t, msg)

	from, err := msg.GetSender(false)
	require.NoError(t, err)
	require.Equal(t, "from@example.com", from)
	require.Len(t, msg.GetAttachments(), 1)
}

func TestBuildMessage_InvalidAddresses(t *testing.T) {
	_, err := buildMessage("not an address", "to@example.com", "s", "b", "f.csv", nil)
	require.ErrorContains(t, err, "invalid sender")

	_, err = buildMessage("from@example.com", "not an address", "s", "b", "f.csv", nil)
	require.ErrorContains(t, err, "invalid recipient")
}
