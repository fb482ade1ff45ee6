package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/salesops-id/salesops-backend-go/internal/config"
	appHTTP "github.com/salesops-id/salesops-backend-go/internal/handler/http"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/database"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/geocode"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/jwt"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/oauth"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/storage"
	"github.com/salesops-id/salesops-backend-go/internal/pkg/vision"
	"github.com/salesops-id/salesops-backend-go/internal/repository/postgresql"
	attendanceService "github.com/salesops-id/salesops-backend-go/internal/service/attendance"
	serviceAuth "github.com/salesops-id/salesops-backend-go/internal/service/auth"
	"github.com/salesops-id/salesops-backend-go/internal/service/file"
	leadService "github.com/salesops-id/salesops-backend-go/internal/service/lead"
	profileService "github.com/salesops-id/salesops-backend-go/internal/service/profile"
	reportService "github.com/salesops-id/salesops-backend-go/internal/service/report"
	slikService "github.com/salesops-id/salesops-backend-go/internal/service/slik"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	profileRepo := postgresql.NewProfileRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	slikRepo := postgresql.NewSlikRepository(db)
	leadReportRepo := postgresql.NewLeadReportRepository(db)
	adReportRepo := postgresql.NewAdReportRepository(db)
	leadRepo := postgresql.NewLeadRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage types: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	extractor := vision.NewGeminiClient(cfg.Vision.APIKey, cfg.Vision.Model, cfg.Vision.BaseURL)
	geocoder := geocode.NewNominatimClient(cfg.Geocode.BaseURL, "salesops-backend/1.0")

	authSvc := serviceAuth.NewAuthService(db, profileRepo, JWTService, JWTRepository)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, geocoder, cfg.App.Timezone)
	slikSvc := slikService.NewSlikService(db, slikRepo, extractor)
	reportSvc := reportService.NewReportService(db, leadReportRepo, adReportRepo)
	leadSvc := leadService.NewLeadService(db, leadRepo)
	profileSvc := profileService.NewProfileService(db, profileRepo)

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Slik:       appHTTP.NewSlikHandler(slikSvc, fileSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Lead:       appHTTP.NewLeadHandler(leadSvc),
		Profile:    appHTTP.NewProfileHandler(profileSvc),
		Geocode:    appHTTP.NewGeocodeHandler(geocoder),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
