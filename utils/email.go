package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho mail xác nhận booking
type BookingConfirmationData struct {
	BookingCode string
	FullName    string
	PackageName string
}

// SendBookingConfirmationEmail gửi mail xác nhận booking (async).
// Gửi lỗi thì chỉ log, không bao giờ làm hỏng booking đã lưu.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		body := fmt.Sprintf(
			"Dear %s,\n\nYour booking for %s has been received.\n\nBooking ID: %s\n\nWe will contact you shortly.\n\nThank you!",
			data.FullName, data.PackageName, data.BookingCode,
		)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking Confirmation - "+data.BookingCode)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email xác nhận booking %s: %v", data.BookingCode, err)
		}
	}()
}

// SendInquiryAlertEmail báo cho staff có liên hệ mới (async, best effort)
func SendInquiryAlertEmail(subject, fromCustomer, message string) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		port := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		staffEmail := os.Getenv("STAFF_ALERT_EMAIL")
		if staffEmail == "" {
			return
		}

		e := email.NewEmail()
		e.From = os.Getenv("SMTP_FROM")
		e.To = []string{staffEmail}
		e.Subject = "New inquiry: " + subject
		e.Text = []byte(fmt.Sprintf("From: %s\n\n%s", fromCustomer, message))
		if err := e.Send(host+":"+port, smtp.PlainAuth("", username, password, host)); err != nil {
			log.Printf("Lỗi gửi mail báo inquiry: %v", err)
		}
	}()
}
