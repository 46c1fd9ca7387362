package postgres

import (
	"testing"

	organizationDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/organization"
	recognitionDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/recognition"
	userDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/user"
	valueDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/value"
	"github.com/frahmantamala/recognition/internal/recognition"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRecognitionRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RecognitionRepository Suite")
}

var _ = Describe("RecognitionRepository", func() {
	var (
		db   *gorm.DB
		repo recognition.Repository

		maria  *userDatamodel.User
		carlos *userDatamodel.User
		ana    *userDatamodel.User
		colab  *valueDatamodel.OrganizationValue
	)

	createRecognition := func(sender, recipient *userDatamodel.User, message string) *recognitionDatamodel.Recognition {
		rec := &recognitionDatamodel.Recognition{
			SenderID:    sender.ID,
			RecipientID: recipient.ID,
			ValueID:     colab.ID,
			Message:     message,
		}
		Expect(repo.Create(rec)).To(Succeed())
		return rec
	}

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&organizationDatamodel.Branch{},
			&organizationDatamodel.Area{},
			&organizationDatamodel.Department{},
			&organizationDatamodel.Team{},
			&userDatamodel.User{},
			&valueDatamodel.OrganizationValue{},
			&recognitionDatamodel.Recognition{},
			&recognitionDatamodel.RecognitionInteraction{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = NewRecognitionRepository(db)

		branch := &organizationDatamodel.Branch{Name: "Casa Matriz"}
		Expect(db.Create(branch).Error).To(Succeed())
		area := &organizationDatamodel.Area{BranchID: branch.ID, Name: "Tecnología"}
		Expect(db.Create(area).Error).To(Succeed())
		department := &organizationDatamodel.Department{AreaID: area.ID, Name: "IT"}
		Expect(db.Create(department).Error).To(Succeed())
		team := &organizationDatamodel.Team{DepartmentID: department.ID, Name: "Desarrollo"}
		Expect(db.Create(team).Error).To(Succeed())

		maria = &userDatamodel.User{Email: "maria@company.com", PasswordHash: "x", Name: "María García", TeamID: &team.ID}
		carlos = &userDatamodel.User{Email: "carlos@company.com", PasswordHash: "x", Name: "Carlos López"}
		ana = &userDatamodel.User{Email: "ana@company.com", PasswordHash: "x", Name: "Ana Martínez"}
		Expect(db.Create(maria).Error).To(Succeed())
		Expect(db.Create(carlos).Error).To(Succeed())
		Expect(db.Create(ana).Error).To(Succeed())

		colab = &valueDatamodel.OrganizationValue{Name: "Colaboración", Icon: "🤝", Color: "#10B981"}
		Expect(db.Create(colab).Error).To(Succeed())
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("ListViews", func() {
		It("returns the feed newest first with display fields joined", func() {
			first := createRecognition(maria, carlos, "primero")
			second := createRecognition(carlos, ana, "segundo")

			views, err := repo.ListViews()

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(2))
			Expect(views[0].ID).To(Equal(second.ID))
			Expect(views[1].ID).To(Equal(first.ID))

			Expect(views[1].SenderName).To(Equal("María García"))
			Expect(views[1].RecipientName).To(Equal("Carlos López"))
			Expect(views[1].ValueName).To(Equal("Colaboración"))
			Expect(views[1].ValueIcon).To(Equal("🤝"))
			Expect(*views[1].SenderTeam).To(Equal("Desarrollo"))
			Expect(*views[1].SenderDepartment).To(Equal("IT"))
			Expect(*views[1].SenderArea).To(Equal("Tecnología"))
			Expect(*views[1].SenderBranch).To(Equal("Casa Matriz"))
			Expect(views[1].RecipientTeam).To(BeNil())
		})

		It("counts likes and comments per entry", func() {
			rec := createRecognition(maria, carlos, "con interacciones")

			content := "¡Felicidades!"
			Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: carlos.ID, Type: recognitionDatamodel.InteractionTypeLike,
			})).To(Succeed())
			Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: ana.ID, Type: recognitionDatamodel.InteractionTypeLike,
			})).To(Succeed())
			Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: ana.ID, Type: recognitionDatamodel.InteractionTypeComment, Content: &content,
			})).To(Succeed())

			views, err := repo.ListViews()

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(1))
			Expect(views[0].Likes).To(Equal(int64(2)))
			Expect(views[0].Comments).To(Equal(int64(1)))
		})

		It("returns an empty slice for an empty ledger", func() {
			views, err := repo.ListViews()

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(BeEmpty())
		})
	})

	Describe("CreateInteraction", func() {
		BeforeEach(func() {
			// the unique like constraint lives in the migrations, not the models
			Expect(db.Exec(`CREATE UNIQUE INDEX idx_interactions_unique_like
				ON recognition_interactions (recognition_id, user_id) WHERE type = 'like'`).Error).To(Succeed())
		})

		It("translates a duplicate like into ErrDuplicateLike", func() {
			rec := createRecognition(maria, carlos, "carrera")

			Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: carlos.ID, Type: recognitionDatamodel.InteractionTypeLike,
			})).To(Succeed())

			err := repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: carlos.ID, Type: recognitionDatamodel.InteractionTypeLike,
			})
			Expect(err).To(MatchError(recognition.ErrDuplicateLike))
		})

		It("keeps accepting repeated comments from one user", func() {
			rec := createRecognition(maria, carlos, "varios comentarios")
			content := "otro más"

			for i := 0; i < 2; i++ {
				Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
					RecognitionID: rec.ID, UserID: carlos.ID, Type: recognitionDatamodel.InteractionTypeComment, Content: &content,
				})).To(Succeed())
			}
		})
	})

	Describe("FindLike", func() {
		It("finds only the matching user's like", func() {
			rec := createRecognition(maria, carlos, "me gusta")
			Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: carlos.ID, Type: recognitionDatamodel.InteractionTypeLike,
			})).To(Succeed())

			found, err := repo.FindLike(rec.ID, carlos.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())

			missing, err := repo.FindLike(rec.ID, ana.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(missing).To(BeNil())
		})
	})

	Describe("GetInteractions", func() {
		It("returns interactions oldest first with user names", func() {
			rec := createRecognition(maria, carlos, "hilo")

			first := "primer comentario"
			second := "segundo comentario"
			Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: carlos.ID, Type: recognitionDatamodel.InteractionTypeComment, Content: &first,
			})).To(Succeed())
			Expect(repo.CreateInteraction(&recognitionDatamodel.RecognitionInteraction{
				RecognitionID: rec.ID, UserID: ana.ID, Type: recognitionDatamodel.InteractionTypeComment, Content: &second,
			})).To(Succeed())

			interactions, err := repo.GetInteractions(rec.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(interactions).To(HaveLen(2))
			Expect(*interactions[0].Content).To(Equal(first))
			Expect(interactions[0].UserName).To(Equal("Carlos López"))
			Expect(*interactions[1].Content).To(Equal(second))
			Expect(interactions[1].UserName).To(Equal("Ana Martínez"))
		})
	})

	Describe("GetByID", func() {
		It("returns not found for a missing id", func() {
			_, err := repo.GetByID(42)
			Expect(err).To(Equal(recognition.ErrNotFound))
		})
	})
})
