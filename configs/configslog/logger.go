package configslog

import (
	"go.uber.org/zap"
)

// Log yapılandırılmış (structured) logger, SLog ise sugared logger.
// Tüm katmanlar bu ikiliyi kullanır.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func init() {
	// Init çağrılmadan önce (testler dahil) güvenli bir varsayılan.
	logger, _ := zap.NewDevelopment()
	replace(logger)
}

// Init logger'ı uygulama ortamına göre kurar.
func Init(appEnv string) {
	var (
		logger *zap.Logger
		err    error
	)
	if appEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		// Logger kurulamazsa varsayılan development logger ile devam edilir.
		SLog.Warnf("Logger kurulamadı (%v), varsayılan kullanılacak", err)
		return
	}
	replace(logger)
}

// Sync bekleyen log kayıtlarını boşaltır. Kapanışta çağrılır.
func Sync() {
	_ = Log.Sync()
}

func replace(logger *zap.Logger) {
	Log = logger
	SLog = logger.Sugar()
}
