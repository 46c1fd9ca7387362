package recognition_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/recognition/internal"
	recognitionDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/recognition"
	"github.com/frahmantamala/recognition/internal/recognition"
	"github.com/frahmantamala/recognition/internal/user"
	"github.com/frahmantamala/recognition/internal/value"
)

func TestRecognitionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RecognitionService Suite")
}

// Mock ledger repository for testing
type mockRecognitionRepository struct {
	recognitions map[int64]*recognitionDatamodel.Recognition
	interactions []*recognitionDatamodel.RecognitionInteraction
	nextID       int64
}

func newMockRecognitionRepository() *mockRecognitionRepository {
	return &mockRecognitionRepository{
		recognitions: make(map[int64]*recognitionDatamodel.Recognition),
		nextID:       1,
	}
}

func (m *mockRecognitionRepository) Create(rec *recognitionDatamodel.Recognition) error {
	rec.ID = m.nextID
	m.nextID++
	rec.CreatedAt = time.Now()
	m.recognitions[rec.ID] = rec
	return nil
}

func (m *mockRecognitionRepository) GetByID(id int64) (*recognitionDatamodel.Recognition, error) {
	rec, exists := m.recognitions[id]
	if !exists {
		return nil, recognition.ErrNotFound
	}
	return rec, nil
}

func (m *mockRecognitionRepository) ListViews() ([]*recognition.RecognitionView, error) {
	views := make([]*recognition.RecognitionView, 0, len(m.recognitions))
	for _, rec := range m.recognitions {
		views = append(views, &recognition.RecognitionView{
			ID:          rec.ID,
			SenderID:    rec.SenderID,
			RecipientID: rec.RecipientID,
			ValueID:     rec.ValueID,
			Message:     rec.Message,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return views, nil
}

func (m *mockRecognitionRepository) CreateInteraction(interaction *recognitionDatamodel.RecognitionInteraction) error {
	interaction.ID = m.nextID
	m.nextID++
	interaction.CreatedAt = time.Now()
	m.interactions = append(m.interactions, interaction)
	return nil
}

func (m *mockRecognitionRepository) FindLike(recognitionID, userID int64) (*recognitionDatamodel.RecognitionInteraction, error) {
	for _, interaction := range m.interactions {
		if interaction.RecognitionID == recognitionID &&
			interaction.UserID == userID &&
			interaction.Type == recognitionDatamodel.InteractionTypeLike {
			return interaction, nil
		}
	}
	return nil, nil
}

func (m *mockRecognitionRepository) GetInteractions(recognitionID int64) ([]*recognition.InteractionView, error) {
	views := make([]*recognition.InteractionView, 0)
	for _, interaction := range m.interactions {
		if interaction.RecognitionID != recognitionID {
			continue
		}
		views = append(views, &recognition.InteractionView{
			ID:            interaction.ID,
			RecognitionID: interaction.RecognitionID,
			UserID:        interaction.UserID,
			Type:          interaction.Type,
			Content:       interaction.Content,
			CreatedAt:     interaction.CreatedAt,
		})
	}
	return views, nil
}

// racyLikeRepository simulates another request inserting the same like
// between the service's FindLike check and its insert.
type racyLikeRepository struct {
	*mockRecognitionRepository
	raced bool
}

func (r *racyLikeRepository) CreateInteraction(interaction *recognitionDatamodel.RecognitionInteraction) error {
	if interaction.Type == recognitionDatamodel.InteractionTypeLike && !r.raced {
		r.raced = true
		winner := &recognitionDatamodel.RecognitionInteraction{
			RecognitionID: interaction.RecognitionID,
			UserID:        interaction.UserID,
			Type:          recognitionDatamodel.InteractionTypeLike,
		}
		if err := r.mockRecognitionRepository.CreateInteraction(winner); err != nil {
			return err
		}
		return recognition.ErrDuplicateLike
	}
	return r.mockRecognitionRepository.CreateInteraction(interaction)
}

type mockUserGetter struct {
	known map[int64]*user.User
}

func (m *mockUserGetter) GetByID(id int64) (*user.User, error) {
	u, exists := m.known[id]
	if !exists {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type mockValueGetter struct {
	known map[int64]*value.Value
}

func (m *mockValueGetter) GetValueByID(id int64) (*value.Value, error) {
	v, exists := m.known[id]
	if !exists {
		return nil, value.ErrNotFound
	}
	return v, nil
}

var _ = Describe("RecognitionService", func() {
	var (
		service *recognition.Service
		repo    *mockRecognitionRepository
		users   *mockUserGetter
		values  *mockValueGetter
		dto     recognition.CreateRecognitionDTO
	)

	const (
		senderID    = int64(1)
		recipientID = int64(2)
		valueID     = int64(3)
	)

	BeforeEach(func() {
		repo = newMockRecognitionRepository()
		users = &mockUserGetter{known: map[int64]*user.User{
			senderID:    {ID: senderID, Name: "María García"},
			recipientID: {ID: recipientID, Name: "Carlos López"},
		}}
		values = &mockValueGetter{known: map[int64]*value.Value{
			valueID: {ID: valueID, Name: "Colaboración"},
		}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = recognition.NewService(repo, users, values, nil, logger)

		dto = recognition.CreateRecognitionDTO{
			RecipientID: recipientID,
			ValueID:     valueID,
			Message:     "Excelente trabajo en el proyecto.",
		}
	})

	Describe("CreateRecognition", func() {
		It("appends a ledger row and returns its id", func() {
			id, err := service.CreateRecognition(senderID, dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))
			Expect(repo.recognitions[id].SenderID).To(Equal(senderID))
			Expect(repo.recognitions[id].Message).To(Equal(dto.Message))
		})

		It("rejects recognizing yourself", func() {
			dto.RecipientID = senderID

			_, err := service.CreateRecognition(senderID, dto)

			Expect(err).To(Equal(recognition.ErrSelfRecognition))
			Expect(repo.recognitions).To(BeEmpty())
		})

		It("rejects an unknown recipient", func() {
			dto.RecipientID = 99

			_, err := service.CreateRecognition(senderID, dto)

			Expect(err).To(Equal(internal.ErrUserNotFound))
		})

		It("rejects an unknown value", func() {
			dto.ValueID = 99

			_, err := service.CreateRecognition(senderID, dto)

			Expect(err).To(Equal(internal.ErrValueNotFound))
		})

		It("rejects an empty message", func() {
			dto.Message = "   "

			_, err := service.CreateRecognition(senderID, dto)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("rejects a message over 1000 characters", func() {
			dto.Message = strings.Repeat("a", 1001)

			_, err := service.CreateRecognition(senderID, dto)

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})
	})

	Describe("AddInteraction", func() {
		var recognitionID int64

		BeforeEach(func() {
			var err error
			recognitionID, err = service.CreateRecognition(senderID, dto)
			Expect(err).ToNot(HaveOccurred())
		})

		It("records a like", func() {
			id, err := service.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "like"})

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))
		})

		It("returns the existing id on a repeat like", func() {
			first, err := service.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "like"})
			Expect(err).ToNot(HaveOccurred())

			second, err := service.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "like"})
			Expect(err).ToNot(HaveOccurred())

			Expect(second).To(Equal(first))
			Expect(repo.interactions).To(HaveLen(1))
		})

		It("resolves a like that loses a concurrent race to the stored id", func() {
			racy := &racyLikeRepository{mockRecognitionRepository: repo}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
			racySvc := recognition.NewService(racy, users, values, nil, logger)

			id, err := racySvc.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "like"})

			Expect(err).ToNot(HaveOccurred())
			Expect(repo.interactions).To(HaveLen(1))
			Expect(id).To(Equal(repo.interactions[0].ID))
		})

		It("requires content for comments", func() {
			_, err := service.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "comment"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("rejects an unknown interaction type", func() {
			_, err := service.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "wave"})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("returns not found for a missing recognition", func() {
			_, err := service.AddInteraction(99, recipientID, recognition.InteractionDTO{Type: "like"})

			Expect(err).To(Equal(recognition.ErrNotFound))
		})
	})

	Describe("InteractionsFor", func() {
		var recognitionID int64

		BeforeEach(func() {
			var err error
			recognitionID, err = service.CreateRecognition(senderID, dto)
			Expect(err).ToNot(HaveOccurred())

			content := "¡Bien merecido!"
			_, err = service.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "comment", Content: &content})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.AddInteraction(recognitionID, recipientID, recognition.InteractionDTO{Type: "like"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("separates comments from the like count", func() {
			summary, err := service.InteractionsFor(recognitionID, senderID)

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.Comments).To(HaveLen(1))
			Expect(summary.Likes).To(Equal(int64(1)))
			Expect(summary.UserLiked).To(BeFalse())
		})

		It("reports whether the requesting user liked", func() {
			summary, err := service.InteractionsFor(recognitionID, recipientID)

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.UserLiked).To(BeTrue())
		})
	})
})
