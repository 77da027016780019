package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	kind    string
	to      string
	name    string
	message string
}

type fakeSender struct {
	sent            []sentMail
	welcomeErr      error
	notificationErr error
}

func (f *fakeSender) SendWelcome(to, name string) error {
	if f.welcomeErr != nil {
		return f.welcomeErr
	}
	f.sent = append(f.sent, sentMail{kind: "welcome", to: to, name: name})
	return nil
}

func (f *fakeSender) SendNotification(name, message string) error {
	if f.notificationErr != nil {
		return f.notificationErr
	}
	f.sent = append(f.sent, sentMail{kind: "notification", name: name, message: message})
	return nil
}

func newEmailRouter(sender EmailSender) *gin.Engine {
	r := gin.New()
	RegisterEmail(r, NewEmailService(sender))
	return r
}

func postEmail(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sendemail", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSendEmail(t *testing.T) {
	sender := &fakeSender{}
	r := newEmailRouter(sender)

	w := postEmail(r, `{"email":"ada@example.com","name":"Ada","message":"hello"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":true}`, w.Body.String())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, sentMail{kind: "welcome", to: "ada@example.com", name: "Ada"}, sender.sent[0])
	assert.Equal(t, sentMail{kind: "notification", name: "Ada", message: "hello"}, sender.sent[1])
}

func TestSendEmail_SecondSendFails(t *testing.T) {
	sender := &fakeSender{notificationErr: fmt.Errorf("smtp: 451 try again later")}
	r := newEmailRouter(sender)

	w := postEmail(r, `{"email":"ada@example.com","name":"Ada","message":"hello"}`)

	// the first send went out, but there is no partial-success reporting
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send OTP"}`, w.Body.String())
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "welcome", sender.sent[0].kind)
}

func TestSendEmail_FirstSendFails(t *testing.T) {
	sender := &fakeSender{welcomeErr: fmt.Errorf("smtp: connection refused")}
	r := newEmailRouter(sender)

	w := postEmail(r, `{"email":"ada@example.com","name":"Ada","message":"hello"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send OTP"}`, w.Body.String())
	assert.Empty(t, sender.sent)
}

func TestSendEmail_MalformedBody(t *testing.T) {
	sender := &fakeSender{}
	r := newEmailRouter(sender)

	w := postEmail(r, `{"email":`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send OTP"}`, w.Body.String())
	assert.Empty(t, sender.sent)
}
