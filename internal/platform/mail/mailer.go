// Package mail はSMTP経由の送信メール（OTP・リセットリンク）を提供します。
package mail

import (
	"context"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"seeek_backend/internal/feature/auth/usecase"
)

// Config holds configuration for the SMTP transport.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// LoadConfig loads mail configuration from environment variables.
func LoadConfig() Config {
	port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	from := os.Getenv("MAIL_FROM_ADDRESS")
	if from == "" {
		from = "Seek <no-reply@seek.com>"
	}
	return Config{
		Host:     os.Getenv("MAIL_HOST"),
		Port:     port,
		User:     os.Getenv("MAIL_USER"),
		Password: os.Getenv("MAIL_PASSWORD"),
		From:     from,
	}
}

// SMTPMailer はusecase.MailerのSMTP実装です。
type SMTPMailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

// SMTPMailerがMailerを実装していることをコンパイル時に検証します。
var _ usecase.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer は指定された設定でSMTPMailerの新しいインスタンスを生成します。
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// send builds and delivers a single HTML mail. Dial failures surface to
// the caller; the usecase decides whether they are fatal.
func (m *SMTPMailer) send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return m.dialer.DialAndSend(msg)
}

// SendOTPMail は確認コードメールを送信します。
func (m *SMTPMailer) SendOTPMail(_ context.Context, email, name string, code int) error {
	return m.send(email, "Verify your Seek account", otpBody(name, code))
}

// SendResetMail はパスワードリセットリンクメールを送信します。
func (m *SMTPMailer) SendResetMail(_ context.Context, email, name, link string) error {
	return m.send(email, "Reset your Seek password", resetBody(name, link))
}
