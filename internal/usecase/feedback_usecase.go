package usecase

import (
	"errors"
	"log"
	"strings"

	"magang-backend/internal/model"
	"magang-backend/internal/notifier"
	"magang-backend/internal/repository"

	"gorm.io/gorm"
)

type FeedbackUsecase struct {
	repo     repository.FeedbackRepository
	userRepo repository.UserRepository
	notifier notifier.Notifier
	// async=false dipakai test supaya pengiriman email bisa diperiksa langsung
	async bool
}

func NewFeedbackUsecase(repo repository.FeedbackRepository, userRepo repository.UserRepository, n notifier.Notifier) *FeedbackUsecase {
	if n == nil {
		n = notifier.Noop{}
	}
	return &FeedbackUsecase{repo: repo, userRepo: userRepo, notifier: n, async: true}
}

func (u *FeedbackUsecase) Sync() *FeedbackUsecase {
	u.async = false
	return u
}

func (u *FeedbackUsecase) Kirim(actor Actor, userID uint, isi string) (*model.Feedback, error) {
	if err := requireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	isi = strings.TrimSpace(isi)
	if isi == "" {
		return nil, invalid("Feedback tidak boleh kosong")
	}

	peserta, err := u.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if peserta.Role != model.RolePeserta {
		return nil, invalid("Feedback hanya bisa dikirim ke peserta")
	}

	fb := &model.Feedback{UserID: peserta.ID, AdminID: actor.ID, Feedback: isi}
	if err := u.repo.Create(fb); err != nil {
		return nil, err
	}

	// email hanya pemberitahuan, gagal kirim tidak membatalkan feedback
	send := func() {
		if err := u.notifier.FeedbackBaru(peserta.Email, peserta.Name, isi); err != nil {
			log.Printf("[FEEDBACK] %v", err)
		}
	}
	if u.async {
		go send()
	} else {
		send()
	}
	return fb, nil
}

func (u *FeedbackUsecase) Milik(actor Actor) ([]model.Feedback, error) {
	if err := requireRole(actor, model.RolePeserta); err != nil {
		return nil, err
	}
	return u.repo.GetByUser(actor.ID)
}
