package routes

import (
	"time"

	"magang-backend/config"
	"magang-backend/internal/notifier"
	"magang-backend/internal/presensi"
	"magang-backend/internal/repository"
	"magang-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps berisi semua dependency yang dibutuhkan routes.
type Deps struct {
	Config config.Config

	Users     repository.UserRepository
	Presensi  repository.PresensiRepository
	Laporan   repository.LaporanRepository
	Feedback  repository.FeedbackRepository
	Lokasi    repository.LokasiRepository
	Dashboard repository.DashboardRepository

	Files    storage.FileStore
	Notifier notifier.Notifier

	// Now bisa diganti di test. Default time.Now.
	Now func() time.Time
}

func NewDeps(db *gorm.DB, cfg config.Config) (Deps, error) {
	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return Deps{}, err
	}

	var n notifier.Notifier = notifier.Noop{}
	if cfg.SMTPHost != "" {
		n = notifier.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	return Deps{
		Config:    cfg,
		Users:     repository.NewUserRepository(db),
		Presensi:  repository.NewPresensiRepository(db),
		Laporan:   repository.NewLaporanRepository(db),
		Feedback:  repository.NewFeedbackRepository(db),
		Lokasi:    repository.NewLokasiRepository(db),
		Dashboard: repository.NewDashboardRepository(db),
		Files:     files,
		Notifier:  n,
		Now:       time.Now,
	}, nil
}

func (d Deps) clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// Setup mendaftarkan semua routes API.
func Setup(app *fiber.App, d Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "time": d.clock()().In(presensi.WIB).Format(time.RFC3339)})
	})

	SetupAuthRoutes(app, d)
	SetupPresensiRoutes(app, d)
	SetupLaporanRoutes(app, d)
	SetupUserRoutes(app, d)
	SetupFeedbackRoutes(app, d)
	SetupDashboardRoutes(app, d)
}
