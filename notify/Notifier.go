package notify

import (
	"fmt"
	"sync"
	"time"

	"lb-front/utils"

	lg "github.com/yatori-dev/yatori-go-core/utils/log"
)

// Kind 通知类型，与 ElMessage 的类型一一对应
type Kind string

const (
	Error   Kind = "error"
	Warning Kind = "warning"
	Success Kind = "success"
	Info    Kind = "info"
)

// Notifier 用户可见的通知出口
type Notifier interface {
	Notify(kind Kind, message string)
}

// Func 函数适配为 Notifier
type Func func(kind Kind, message string)

func (f Func) Notify(kind Kind, message string) {
	f(kind, message)
}

// LogNotifier 以彩色日志输出通知
type LogNotifier struct{}

func (LogNotifier) Notify(kind Kind, message string) {
	switch kind {
	case Error:
		lg.Print(lg.INFO, lg.BoldRed, "[error] ", message)
	case Warning:
		lg.Print(lg.INFO, lg.Yellow, "[warning] ", message)
	case Success:
		lg.Print(lg.INFO, lg.Green, "[success] ", message)
	default:
		lg.Print(lg.INFO, lg.Default, "[", string(kind), "] ", message)
	}
}

// Multi 依次分发给多个通知出口
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(kind Kind, message string) {
		for _, n := range notifiers {
			if n != nil {
				n.Notify(kind, message)
			}
		}
	})
}

// Message 一条已发出的通知
type Message struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// History 保留最近的通知，供页面展示
type History struct {
	mu    sync.Mutex
	limit int
	items []Message
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 20
	}
	return &History{limit: limit}
}

func (h *History) Notify(kind Kind, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, Message{Kind: kind, Message: message, Time: time.Now()})
	if len(h.items) > h.limit {
		h.items = h.items[len(h.items)-h.limit:]
	}
}

// Messages 按时间顺序返回副本
func (h *History) Messages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Message, len(h.items))
	copy(out, h.items)
	return out
}

// Last 最近一条通知
func (h *History) Last() (Message, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.items) == 0 {
		return Message{}, false
	}
	return h.items[len(h.items)-1], true
}

// MailNotifier 将错误通知发送到邮箱
type MailNotifier struct {
	Setting utils.MailSetting
	To      []string
	Kinds   []Kind

	send func(setting utils.MailSetting, to []string, subject, content string) error
	wg   sync.WaitGroup
}

func NewMailNotifier(setting utils.MailSetting, to []string, kinds ...Kind) *MailNotifier {
	if len(kinds) == 0 {
		kinds = []Kind{Error}
	}
	return &MailNotifier{Setting: setting, To: to, Kinds: kinds, send: utils.SendMail}
}

// Notify 异步发送，失败只记录日志
func (m *MailNotifier) Notify(kind Kind, message string) {
	if !m.accept(kind) {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		subject := fmt.Sprintf("lb-front %s 通知", kind)
		if err := m.send(m.Setting, m.To, subject, message); err != nil {
			lg.Print(lg.INFO, lg.Red, "邮件通知发送失败: ", err.Error())
		}
	}()
}

// Wait 等待已发起的邮件发送结束
func (m *MailNotifier) Wait() {
	m.wg.Wait()
}

func (m *MailNotifier) accept(kind Kind) bool {
	for _, k := range m.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
