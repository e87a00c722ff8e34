package utils

import (
	"crypto/tls"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

// MailSetting 发件配置
type MailSetting struct {
	Host     string
	Port     int
	UserName string
	Password string
}

// SendMail 发送邮件
func SendMail(setting MailSetting, toMail []string, subject, content string) error {
	if len(toMail) == 0 {
		return fmt.Errorf("收件人为空")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(setting.UserName, "lb-front")) // 发件人
	m.SetHeader("To", toMail...)                                         // 收件人
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", buildEmailHTML(subject, content))

	d := gomail.NewDialer(setting.Host, setting.Port, setting.UserName, setting.Password)
	// 关闭SSL协议认证
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	return d.DialAndSend(m)
}

// 生成邮件 HTML，content 按纯文本转义
func buildEmailHTML(title, content string) string {
	content = html.EscapeString(content)
	content = strings.ReplaceAll(content, "\n", "<br>")
	return fmt.Sprintf(`<!doctype html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>%s</title></head>
<body style="margin:0;padding:24px;background:#f5f7fb;font-family:system-ui,sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:#fff;border-radius:12px;padding:24px;">
    <div style="font-size:20px;font-weight:700;color:#111827;">%s</div>
    <div style="margin-top:16px;font-size:15px;color:#374151;line-height:1.8;">%s</div>
  </div>
  <div style="text-align:center;color:#6b7280;font-size:12px;padding-top:12px;">这是一封系统通知邮件，请勿直接回复。</div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), content)
}
