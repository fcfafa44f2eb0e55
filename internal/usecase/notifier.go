package usecase

import (
	"log"

	"absensi-backend/config"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	gomail "gopkg.in/gomail.v2"
)

// Notifier menyimpan notifikasi in-app dan (opsional) mengirim email.
// Best effort: kegagalan cuma dicatat ke log, tidak pernah menggagalkan
// operasi pemanggil.
type Notifier struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
}

func NewNotifier(repo repository.NotificationRepository, userRepo repository.UserRepository) *Notifier {
	return &Notifier{repo: repo, userRepo: userRepo}
}

func (n *Notifier) Notify(userID uint, title, body string) {
	if err := n.repo.Create(&model.Notification{UserID: userID, Title: title, Body: body}); err != nil {
		log.Printf("gagal menyimpan notifikasi untuk user %d: %v", userID, err)
	}

	user, err := n.userRepo.FindByID(userID)
	if err != nil || user.Email == "" {
		return
	}
	if err := n.sendMail(user.Email, title, body); err != nil {
		log.Printf("gagal mengirim email ke %s: %v", user.Email, err)
	}
}

func (n *Notifier) sendMail(to, subject, body string) error {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		// SMTP belum dikonfigurasi, cukup notifikasi in-app saja.
		return nil
	}
	port := config.GetEnvAsInt("SMTP_PORT", 587)
	username := config.GetEnv("SMTP_USERNAME", "")
	password := config.GetEnv("SMTP_PASSWORD", "")
	from := config.GetEnv("SMTP_FROM", username)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return gomail.NewDialer(host, port, username, password).DialAndSend(m)
}
