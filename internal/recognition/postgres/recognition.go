package postgres

import (
	"errors"
	"strings"

	recognitionDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/recognition"
	"github.com/frahmantamala/recognition/internal/recognition"
	"gorm.io/gorm"
)

// RecognitionRepository implements recognition.Repository using GORM. The
// feed query is raw SQL because it joins users twice, walks the org chain
// for both sides, and aggregates interaction counts.
type RecognitionRepository struct {
	db *gorm.DB
}

func NewRecognitionRepository(db *gorm.DB) recognition.Repository {
	return &RecognitionRepository{db: db}
}

const feedSelect = `
SELECT
	r.id,
	r.sender_id,
	r.recipient_id,
	r.value_id,
	r.message,
	r.created_at,
	su.name AS sender_name,
	su.avatar_url AS sender_avatar_url,
	st.name AS sender_team,
	sd.name AS sender_department,
	sa.name AS sender_area,
	sb.name AS sender_branch,
	ru.name AS recipient_name,
	ru.avatar_url AS recipient_avatar_url,
	rt.name AS recipient_team,
	rd.name AS recipient_department,
	ra.name AS recipient_area,
	rb.name AS recipient_branch,
	v.name AS value_name,
	v.icon AS value_icon,
	v.color AS value_color,
	COALESCE(l.likes, 0) AS likes,
	COALESCE(c.comments, 0) AS comments
FROM recognitions r
JOIN users su ON r.sender_id = su.id
LEFT JOIN teams st ON su.team_id = st.id
LEFT JOIN departments sd ON st.department_id = sd.id
LEFT JOIN areas sa ON sd.area_id = sa.id
LEFT JOIN branches sb ON sa.branch_id = sb.id
JOIN users ru ON r.recipient_id = ru.id
LEFT JOIN teams rt ON ru.team_id = rt.id
LEFT JOIN departments rd ON rt.department_id = rd.id
LEFT JOIN areas ra ON rd.area_id = ra.id
LEFT JOIN branches rb ON ra.branch_id = rb.id
JOIN organization_values v ON r.value_id = v.id
LEFT JOIN (
	SELECT recognition_id, COUNT(*) AS likes
	FROM recognition_interactions
	WHERE type = 'like'
	GROUP BY recognition_id
) l ON l.recognition_id = r.id
LEFT JOIN (
	SELECT recognition_id, COUNT(*) AS comments
	FROM recognition_interactions
	WHERE type = 'comment'
	GROUP BY recognition_id
) c ON c.recognition_id = r.id
ORDER BY r.created_at DESC, r.id DESC`

const interactionSelect = `
SELECT
	i.id,
	i.recognition_id,
	i.user_id,
	u.name AS user_name,
	i.type,
	i.content,
	i.created_at
FROM recognition_interactions i
JOIN users u ON i.user_id = u.id
WHERE i.recognition_id = ?
ORDER BY i.created_at ASC, i.id ASC`

func (r *RecognitionRepository) Create(rec *recognitionDatamodel.Recognition) error {
	return r.db.Create(rec).Error
}

func (r *RecognitionRepository) GetByID(id int64) (*recognitionDatamodel.Recognition, error) {
	var rec recognitionDatamodel.Recognition
	err := r.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recognition.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecognitionRepository) ListViews() ([]*recognition.RecognitionView, error) {
	var views []*recognition.RecognitionView
	if err := r.db.Raw(feedSelect).Scan(&views).Error; err != nil {
		return nil, err
	}
	if views == nil {
		views = make([]*recognition.RecognitionView, 0)
	}
	return views, nil
}

func (r *RecognitionRepository) CreateInteraction(interaction *recognitionDatamodel.RecognitionInteraction) error {
	if err := r.db.Create(interaction).Error; err != nil {
		if interaction.Type == recognitionDatamodel.InteractionTypeLike && isUniqueViolation(err) {
			return recognition.ErrDuplicateLike
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}

func (r *RecognitionRepository) FindLike(recognitionID, userID int64) (*recognitionDatamodel.RecognitionInteraction, error) {
	var interaction recognitionDatamodel.RecognitionInteraction
	err := r.db.
		Where("recognition_id = ? AND user_id = ? AND type = ?", recognitionID, userID, recognitionDatamodel.InteractionTypeLike).
		First(&interaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interaction, nil
}

func (r *RecognitionRepository) GetInteractions(recognitionID int64) ([]*recognition.InteractionView, error) {
	var interactions []*recognition.InteractionView
	if err := r.db.Raw(interactionSelect, recognitionID).Scan(&interactions).Error; err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = make([]*recognition.InteractionView, 0)
	}
	return interactions, nil
}
