package mail

import (
	"bytes"
	"io"
	"testing"

	"portfolio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMessage struct {
	from string
	to   []string
	body string
}

type captureSender struct {
	messages []capturedMessage
}

func (s *captureSender) Send(from string, to []string, msg io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return err
	}
	s.messages = append(s.messages, capturedMessage{from: from, to: to, body: buf.String()})
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = 465
	cfg.SMTP.SSL = true
	cfg.SMTP.From = "portfolio@example.com"
	cfg.SMTP.Operator = "owner@example.com"
	return cfg
}

func TestSendWelcome(t *testing.T) {
	sender := &captureSender{}
	m, err := NewWithSender(testConfig(), sender)
	require.NoError(t, err)

	require.NoError(t, m.SendWelcome("ada@example.com", "Ada"))

	require.Len(t, sender.messages, 1)
	got := sender.messages[0]
	assert.Equal(t, "portfolio@example.com", got.from)
	assert.Equal(t, []string{"ada@example.com"}, got.to)
	assert.Contains(t, got.body, "text/html")
	assert.Contains(t, got.body, "Ada")
}

func TestSendNotification_GoesToOperator(t *testing.T) {
	sender := &captureSender{}
	m, err := NewWithSender(testConfig(), sender)
	require.NoError(t, err)

	require.NoError(t, m.SendNotification("Ada", "hello there"))

	require.Len(t, sender.messages, 1)
	got := sender.messages[0]
	assert.Equal(t, []string{"owner@example.com"}, got.to)
	assert.Contains(t, got.body, "hello there")
}

func TestRender_EscapesHTML(t *testing.T) {
	m, err := New(testConfig())
	require.NoError(t, err)

	body, err := m.render("notification.html", map[string]any{
		"Name":    "Ada",
		"Message": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	m, err := New(testConfig())
	require.NoError(t, err)

	_, err = m.render("missing.html", nil)
	assert.Error(t, err)
}
