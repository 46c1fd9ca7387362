package value_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	valueDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/value"
	"github.com/frahmantamala/recognition/internal/value"
)

func TestValueService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ValueService Suite")
}

type mockValueRepository struct {
	values []*valueDatamodel.OrganizationValue
	nextID int64
}

func newMockValueRepository() *mockValueRepository {
	return &mockValueRepository{nextID: 1}
}

func (m *mockValueRepository) GetAll() ([]*valueDatamodel.OrganizationValue, error) {
	return m.values, nil
}

func (m *mockValueRepository) GetByID(id int64) (*valueDatamodel.OrganizationValue, error) {
	for _, v := range m.values {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (m *mockValueRepository) Count() (int64, error) {
	return int64(len(m.values)), nil
}

func (m *mockValueRepository) Create(v *valueDatamodel.OrganizationValue) error {
	v.ID = m.nextID
	m.nextID++
	m.values = append(m.values, v)
	return nil
}

var _ = Describe("ValueService", func() {
	var (
		service *value.Service
		repo    *mockValueRepository
	)

	BeforeEach(func() {
		repo = newMockValueRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = value.NewService(repo, logger)
	})

	Describe("EnsureSeeded", func() {
		It("seeds exactly the six catalog values", func() {
			Expect(service.EnsureSeeded()).To(Succeed())

			values, err := service.GetAllValues()
			Expect(err).ToNot(HaveOccurred())
			Expect(values).To(HaveLen(6))

			names := make([]string, 0, len(values))
			for _, v := range values {
				names = append(names, v.Name)
			}
			Expect(names).To(ConsistOf(
				"Innovación", "Colaboración", "Excelencia",
				"Integridad", "Liderazgo", "Compromiso",
			))
		})

		It("does not duplicate values on repeated seeding", func() {
			Expect(service.EnsureSeeded()).To(Succeed())
			Expect(service.EnsureSeeded()).To(Succeed())

			values, err := service.GetAllValues()
			Expect(err).ToNot(HaveOccurred())
			Expect(values).To(HaveLen(6))
		})

		It("leaves an already populated catalog untouched", func() {
			Expect(repo.Create(&valueDatamodel.OrganizationValue{Name: "Custom"})).To(Succeed())

			Expect(service.EnsureSeeded()).To(Succeed())

			values, err := service.GetAllValues()
			Expect(err).ToNot(HaveOccurred())
			Expect(values).To(HaveLen(1))
		})
	})

	Describe("GetValueByID", func() {
		It("returns a seeded value with its display fields", func() {
			Expect(service.EnsureSeeded()).To(Succeed())

			v, err := service.GetValueByID(repo.values[0].ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(v.Name).To(Equal("Innovación"))
			Expect(v.Icon).ToNot(BeEmpty())
			Expect(v.Color).To(HavePrefix("#"))
		})

		It("returns not found for an unknown id", func() {
			_, err := service.GetValueByID(99)
			Expect(err).To(Equal(value.ErrNotFound))
		})
	})
})
