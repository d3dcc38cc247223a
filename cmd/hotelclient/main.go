package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/auth"
	"github.com/Ptakun123/HotelProj/internal/config"
	"github.com/Ptakun123/HotelProj/internal/session"
	"github.com/Ptakun123/HotelProj/internal/tui"
)

const (
	logFileName        = "client.log"
	logFilePermissions = 0666
)

// Переменные для версии и даты сборки, устанавливаются через ldflags.
//
//nolint:gochecknoglobals // Устанавливаются через ldflags при сборке
var (
	version    = "dev"
	buildDate  = "unknown"
	commitHash = "N/A"
)

// setupLogging настраивает логирование в файл <logDir>/client.log.
func setupLogging(logDir string) {
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		// Используем panic, так как без логов продолжать нет смысла
		panic("Не удалось создать директорию для логов: " + err.Error())
	}
	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		panic("Не удалось открыть лог-файл: " + err.Error())
	}
	// Файл остается открытым на все время работы приложения,
	// его закроет ОС при завершении процесса.

	logHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))
	slog.Info("Логгер инициализирован", "path", logPath)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка чтения конфигурации: %v", err)
	}

	versionFlag := flag.Bool("version", false, "Показать версию и дату сборки")
	serverURLFlag := flag.String("server-url", cfg.ServerURL, "URL сервера бронирования")
	sessionFlag := flag.String("session", cfg.SessionFile, "Путь к файлу сессии")
	debugModeFlag := flag.Bool("debug", cfg.Debug, "Включить режим отладки TUI")
	flag.Parse()

	if *versionFlag {
		// Используем стандартный log для вывода в консоль, так как slog настроен на файл
		log.SetOutput(os.Stdout)
		log.SetFlags(0)
		log.Println("Hotel Booking Client")
		log.Printf("Version: %s", version)
		log.Printf("Build Date: %s", buildDate)
		log.Printf("Commit Hash: %s", commitHash)
		os.Exit(0)
	}

	setupLogging(cfg.LogDir)

	slog.Info("Запуск клиента бронирования",
		"server_url", *serverURLFlag,
		"session_file", *sessionFlag,
		"debug_mode", *debugModeFlag,
		"version", version,
	)

	store, err := session.Open(*sessionFlag)
	if err != nil {
		slog.Error("Не удалось открыть хранилище сессии", "path", *sessionFlag, "error", err)
		os.Exit(1)
	}
	defer func() {
		if errClose := store.Close(); errClose != nil {
			slog.Error("Ошибка при закрытии хранилища сессии", "error", errClose)
		}
	}()

	client := api.NewHTTPClient(*serverURLFlag)
	manager := auth.NewManager(client, store)

	if err = tui.Start(client, manager, store, *serverURLFlag, *debugModeFlag); err != nil {
		slog.Error("Ошибка при запуске TUI", "error", err)
		os.Exit(1)
	}
}
