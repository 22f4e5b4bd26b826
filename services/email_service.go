package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"

	"github.com/darshan1301/psfa-landing-page-sub001/config"
	"github.com/darshan1301/psfa-landing-page-sub001/models"
)

// EmailService отправляет уведомления администратору о новых обращениях и
// заявках. Без SMTP-конфигурации все методы — no-op.
type EmailService struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewEmailService(cfg *config.Config, logger *slog.Logger) *EmailService {
	return &EmailService{cfg: cfg, logger: logger}
}

var enquiryEmailTemplate = template.Must(template.New("enquiry").Parse(`
<h3>Новое обращение с сайта</h3>
<p><b>Имя:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
{{if .Phone}}<p><b>Телефон:</b> {{.Phone}}</p>{{end}}
<p><b>Сообщение:</b></p>
<p>{{.Message}}</p>
`))

var applicationEmailTemplate = template.Must(template.New("application").Parse(`
<h3>Новая заявка на вакансию</h3>
<p><b>Имя:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Телефон:</b> {{.Phone}}</p>
{{if .ResumeURL}}<p><b>Резюме:</b> <a href="{{.ResumeURL}}">{{.ResumeURL}}</a></p>{{end}}
`))

// NotifyEnquiry отправляет письмо в отдельной горутине вызывающего; ошибка
// только логируется и никогда не влияет на ответ клиенту.
func (s *EmailService) NotifyEnquiry(enquiry *models.Enquiry) {
	if !s.cfg.EmailEnabled() {
		return
	}

	var body bytes.Buffer
	if err := enquiryEmailTemplate.Execute(&body, enquiry); err != nil {
		s.logger.Error("failed to render enquiry email", slog.Any("error", err))
		return
	}

	if err := s.sendEmail([]string{s.cfg.SMTPTo}, "Новое обращение: "+enquiry.Name, body.String()); err != nil {
		s.logger.Error("failed to send enquiry notification",
			slog.Int("enquiry_id", enquiry.ID),
			slog.Any("error", err))
	}
}

func (s *EmailService) NotifyJobApplication(application *models.JobApplication) {
	if !s.cfg.EmailEnabled() {
		return
	}

	var body bytes.Buffer
	if err := applicationEmailTemplate.Execute(&body, application); err != nil {
		s.logger.Error("failed to render application email", slog.Any("error", err))
		return
	}

	if err := s.sendEmail([]string{s.cfg.SMTPTo}, "Новая заявка на вакансию: "+application.Name, body.String()); err != nil {
		s.logger.Error("failed to send application notification",
			slog.Int("application_id", application.ID),
			slog.Any("error", err))
	}
}

func (s *EmailService) sendEmail(to []string, subject string, body string) error {
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)

	msg := []byte("To: " + to[0] + "\r\n" +
		"From: " + s.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	tlsconfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
	}

	var client *smtp.Client
	if s.cfg.SMTPPort == 465 {
		// Прямое TLS-соединение (обычно порт 465)
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("tls dial failed: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			return fmt.Errorf("smtp client failed: %w", err)
		}
	} else {
		// STARTTLS (обычно порт 587)
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("smtp dial failed: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("starttls failed: %w", err)
		}
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("smtp MAIL failed: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT failed: %w", err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close failed: %w", err)
	}

	return client.Quit()
}
