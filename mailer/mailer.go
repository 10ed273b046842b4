// Package mailer LCV bildirimleri için basit SMTP gönderimi sağlar.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
)

// Message gönderilecek tek bir e-posta.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// IMailer e-posta gönderim arayüzü.
type IMailer interface {
	Send(msg Message) error
}

// NewFromEnv SMTP ayarlıysa gerçek mailer, değilse no-op mailer döndürür.
func NewFromEnv() IMailer {
	cfg := configs.GetSMTPConfig()
	if cfg.Host == "" || cfg.From == "" {
		configslog.SLog.Info("SMTP yapılandırılmamış, e-posta gönderimi devre dışı")
		return &NoopMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

// SMTPMailer net/smtp üzerinden PlainAuth ile gönderim yapar.
type SMTPMailer struct {
	cfg configs.SMTPConfig
}

// Send mesajı SMTP sunucusuna iletir.
func (m *SMTPMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("alıcı adresi boş")
	}
	payload := []byte(
		"From: " + m.cfg.From + "\r\n" +
			"To: " + strings.Join(msg.To, ", ") + "\r\n" +
			"Subject: " + msg.Subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			msg.Body + "\r\n",
	)
	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, msg.To, payload)
}

// NoopMailer gönderimi atlar; geliştirme ortamı ve testler için.
type NoopMailer struct{}

// Send hiçbir şey yapmaz.
func (m *NoopMailer) Send(msg Message) error {
	configslog.SLog.Debugf("NoopMailer: %q konulu e-posta atlandı (alıcı: %s)",
		msg.Subject, strings.Join(msg.To, ", "))
	return nil
}
