package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	StoreDriver string // mysql | badger | memory
	DBDSN       string
	BadgerPath  string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_DRIVER")))
	if driver == "" {
		driver = "badger"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/busboard?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s"
	}

	badgerPath := strings.TrimSpace(os.Getenv("BADGER_PATH"))
	if badgerPath == "" {
		badgerPath = "./data/busboard"
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		StoreDriver: driver,
		DBDSN:       dsn,
		BadgerPath:  badgerPath,
	}
}
