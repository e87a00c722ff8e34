package notify

import (
	"errors"
	"sync"
	"testing"

	"lb-front/utils"

	"github.com/stretchr/testify/assert"
)

func TestHistoryKeepsLatest(t *testing.T) {
	h := NewHistory(2)
	_, ok := h.Last()
	assert.False(t, ok)

	h.Notify(Error, "a")
	h.Notify(Warning, "b")
	h.Notify(Error, "c")

	msgs := h.Messages()
	assert.Len(t, msgs, 2)
	assert.Equal(t, "b", msgs[0].Message)
	last, ok := h.Last()
	assert.True(t, ok)
	assert.Equal(t, Error, last.Kind)
	assert.Equal(t, "c", last.Message)
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewHistory(5), NewHistory(5)
	Multi(a, nil, b).Notify(Info, "hello")
	assert.Len(t, a.Messages(), 1)
	assert.Len(t, b.Messages(), 1)
}

func TestMailNotifierFiltersKinds(t *testing.T) {
	var mu sync.Mutex
	var sent []string
	m := NewMailNotifier(utils.MailSetting{Host: "smtp.example.com"}, []string{"ops@example.com"})
	m.send = func(_ utils.MailSetting, to []string, subject, content string) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, content)
		assert.Equal(t, []string{"ops@example.com"}, to)
		return nil
	}

	m.Notify(Success, "ignored")
	m.Notify(Error, "请求失败")
	m.Wait()

	assert.Equal(t, []string{"请求失败"}, sent)
}

func TestMailNotifierSendFailureDoesNotPanic(t *testing.T) {
	m := NewMailNotifier(utils.MailSetting{}, nil, Error, Warning)
	m.send = func(utils.MailSetting, []string, string, string) error {
		return errors.New("dial tcp: refused")
	}
	m.Notify(Warning, "x")
	m.Wait()
}
