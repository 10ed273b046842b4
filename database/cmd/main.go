package main

import (
	"flag"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/database"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	configs.LoadEnv()
	configslog.Init(configs.AppEnv())
	defer configslog.Sync()

	configs.ConnectDB()
	defer configs.CloseDB()

	db := configs.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
