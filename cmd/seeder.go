package cmd

import (
	"fmt"
	"log"
	"time"

	authPostgres "github.com/frahmantamala/recognition/internal/auth/postgres"
	recognitionDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/recognition"
	userDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/user"
	"github.com/frahmantamala/recognition/internal/organization"
	organizationPostgres "github.com/frahmantamala/recognition/internal/organization/postgres"
	"github.com/frahmantamala/recognition/internal/user"
	"github.com/frahmantamala/recognition/internal/value"
	valuePostgres "github.com/frahmantamala/recognition/internal/value/postgres"
	"github.com/frahmantamala/recognition/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Email    string
	Password string
	Name     string
	Team     string
	Birthday string
	IsAdmin  bool
}

var seedUsers = []seedUser{
	{Email: "admin@company.com", Password: "admin123", Name: "Administrador Sistema", Team: "Arquitectura", Birthday: "1985-03-15", IsAdmin: true},
	{Email: "maria.garcia@company.com", Password: "password123", Name: "María García", Team: "Desarrollo", Birthday: "1990-12-25"},
	{Email: "carlos.lopez@company.com", Password: "password123", Name: "Carlos López", Team: "Ventas Norte", Birthday: "1988-01-01"},
	{Email: "ana.martinez@company.com", Password: "password123", Name: "Ana Martínez", Team: "Marketing Digital", Birthday: "1992-07-20"},
	{Email: "luis.rodriguez@company.com", Password: "password123", Name: "Luis Rodríguez", Team: "Infraestructura", Birthday: "1987-11-30"},
	{Email: "sofia.hernandez@company.com", Password: "password123", Name: "Sofía Hernández", Team: "Gestión de Talento", Birthday: "1991-06-15"},
}

type seedRecognition struct {
	SenderEmail    string
	RecipientEmail string
	ValueName      string
	Message        string
}

var seedRecognitions = []seedRecognition{
	{"maria.garcia@company.com", "carlos.lopez@company.com", "Colaboración", "Excelente trabajo en el proyecto de la nueva plataforma. Tu colaboración fue clave para el éxito."},
	{"carlos.lopez@company.com", "ana.martinez@company.com", "Innovación", "Tu propuesta de automatización ahorró muchas horas de trabajo manual."},
	{"ana.martinez@company.com", "luis.rodriguez@company.com", "Colaboración", "Siempre dispuesto a ayudar al equipo cuando más lo necesitamos."},
	{"luis.rodriguez@company.com", "maria.garcia@company.com", "Excelencia", "Tu código siempre es impecable y bien documentado."},
	{"sofia.hernandez@company.com", "carlos.lopez@company.com", "Liderazgo", "Excelente liderazgo durante la crisis del proyecto Q4."},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Setup(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
		lg := logger.LoggerWrapper()

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("failed to unwrap sql.DB: %v", err)
		}
		if err := ensureSchema(sqlDB, cfg.Database.Driver); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}

		if clearData {
			if err := clearExistingData(db); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Existing data cleared")
		}

		orgRepo := organizationPostgres.NewOrganizationRepository(db)
		orgService := organization.NewService(orgRepo, lg)
		if err := orgService.EnsureHierarchy(organization.DefaultHierarchy); err != nil {
			log.Fatalf("failed to seed organization hierarchy: %v", err)
		}

		valueService := value.NewService(valuePostgres.NewValueRepository(db), lg)
		if err := valueService.EnsureSeeded(); err != nil {
			log.Fatalf("failed to seed values: %v", err)
		}

		userIDs, err := seedDemoUsers(db, orgService, cfg.Security.EffectiveBCryptCost())
		if err != nil {
			log.Fatalf("failed to seed users: %v", err)
		}

		if err := seedDemoRecognitions(db, valueService, userIDs); err != nil {
			log.Fatalf("failed to seed recognitions: %v", err)
		}

		// maintenance while we have the handle open; sessions have no sweeper
		if purged, err := authPostgres.NewRepository(db).PurgeExpired(time.Now()); err != nil {
			lg.Warn("failed to purge expired sessions", "error", err)
		} else if purged > 0 {
			fmt.Printf("Purged %d expired sessions\n", purged)
		}

		fmt.Println("Database seeded successfully")
		fmt.Println("- admin@company.com / admin123 (admin)")
		fmt.Println("- maria.garcia@company.com / password123")
		fmt.Println("- carlos.lopez@company.com / password123")
		fmt.Println("- ana.martinez@company.com / password123")
		fmt.Println("- luis.rodriguez@company.com / password123")
		fmt.Println("- sofia.hernandez@company.com / password123")
	},
}

func seedDemoUsers(db *gorm.DB, orgService *organization.Service, bcryptCost int) (map[string]int64, error) {
	userIDs := make(map[string]int64, len(seedUsers))

	for _, seed := range seedUsers {
		var existing userDatamodel.User
		err := db.Where("email = ?", seed.Email).First(&existing).Error
		if err == nil {
			userIDs[seed.Email] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcryptCost)
		if err != nil {
			return nil, err
		}

		teamID, err := orgService.TeamIDByName(seed.Team)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", seed.Team, err)
		}

		birthday, err := time.Parse(user.BirthdayLayout, seed.Birthday)
		if err != nil {
			return nil, fmt.Errorf("birthday for %s: %w", seed.Email, err)
		}

		record := &userDatamodel.User{
			Email:        seed.Email,
			PasswordHash: string(hash),
			Name:         seed.Name,
			Birthday:     &birthday,
			TeamID:       &teamID,
			IsAdmin:      seed.IsAdmin,
		}
		if err := db.Create(record).Error; err != nil {
			return nil, err
		}
		userIDs[seed.Email] = record.ID
		fmt.Printf("Seeded user: %s\n", seed.Name)
	}

	return userIDs, nil
}

func seedDemoRecognitions(db *gorm.DB, valueService *value.Service, userIDs map[string]int64) error {
	var count int64
	if err := db.Model(&recognitionDatamodel.Recognition{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	values, err := valueService.GetAllValues()
	if err != nil {
		return err
	}
	valueIDs := make(map[string]int64, len(values))
	for _, v := range values {
		valueIDs[v.Name] = v.ID
	}

	for _, seed := range seedRecognitions {
		record := &recognitionDatamodel.Recognition{
			SenderID:    userIDs[seed.SenderEmail],
			RecipientID: userIDs[seed.RecipientEmail],
			ValueID:     valueIDs[seed.ValueName],
			Message:     seed.Message,
		}
		if err := db.Create(record).Error; err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d recognitions\n", len(seedRecognitions))
	return nil
}

func clearExistingData(db *gorm.DB) error {
	tables := []string{
		"recognition_interactions",
		"recognitions",
		"sessions",
		"users",
		"organization_values",
		"teams",
		"departments",
		"areas",
		"branches",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
