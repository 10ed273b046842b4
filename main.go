package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/pkg/outbox"
	"dugun.link/routes"
	"dugun.link/services"
)

func main() {
	configs.LoadEnv()
	configslog.Init(configs.AppEnv())
	defer configslog.Sync()

	configs.ConnectDB()
	defer configs.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      "dugun.link",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	routes.SetupRoutes(app)

	// Çeviri override katmanı açılışta bir kez yüklenir; başarısız olsa da
	// statik bundle'larla devam edilir.
	translationService := services.NewTranslationService()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := translationService.Refresh(ctx); err != nil {
		configslog.SLog.Warn("Çeviri override katmanı açılışta yüklenemedi, statik bundle'lar aktif.")
	}
	if configs.GetEnv("LIVE_TRANSLATIONS", "") != "" {
		interval := time.Duration(configs.GetEnvInt("LIVE_TRANSLATIONS_INTERVAL_SEC", 2)) * time.Second
		translationService.StartLiveRefresh(ctx, interval)
		configslog.SLog.Infof("Canlı çeviri yenileme aktif (aralık: %s)", interval)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := ":" + configs.AppPort()
		configslog.SLog.Infof("HTTP sunucusu dinlemede: %s", addr)
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("HTTP sunucusu başlatılamadı", zap.Error(err))
		}
	}()

	<-shutdown
	configslog.SLog.Info("Kapanış sinyali alındı, sunucu durduruluyor...")

	cancel()
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
	}

	// Kuyruktaki bildirim görevleri tamamlanmadan süreç sonlanmaz.
	outbox.Default.Wait()
	configslog.SLog.Info("Sunucu temiz biçimde kapatıldı.")
}
