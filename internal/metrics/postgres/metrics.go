package postgres

import (
	"time"

	"github.com/frahmantamala/recognition/internal/metrics"
	"github.com/jmoiron/sqlx"
)

// MetricsRepository computes aggregates with raw sqlx queries; the shapes
// here never map onto gorm models.
type MetricsRepository struct {
	db *sqlx.DB
}

func NewMetricsRepository(db *sqlx.DB) metrics.Repository {
	return &MetricsRepository{db: db}
}

const userStatsQuery = `
SELECT
	(SELECT COUNT(*) FROM recognitions WHERE recipient_id = ?) AS received,
	(SELECT COUNT(*) FROM recognitions WHERE sender_id = ?) AS sent,
	(SELECT COUNT(DISTINCT value_id) FROM recognitions WHERE recipient_id = ?) AS distinct_values,
	(SELECT COUNT(*)
	 FROM users colleague
	 JOIN users self ON self.id = ?
	 WHERE colleague.team_id IS NOT NULL
	   AND colleague.team_id = self.team_id
	   AND colleague.id <> self.id) AS team_colleagues`

const participantsQuery = `
SELECT COUNT(*) FROM (
	SELECT sender_id AS user_id FROM recognitions
	UNION
	SELECT recipient_id FROM recognitions
) participants`

const networkNodesQuery = `
SELECT
	u.id AS user_id,
	u.name,
	t.name AS team,
	d.name AS department,
	a.name AS area,
	b.name AS branch,
	(SELECT COUNT(*) FROM recognitions WHERE sender_id = u.id) AS sent,
	(SELECT COUNT(*) FROM recognitions WHERE recipient_id = u.id) AS received
FROM users u
LEFT JOIN teams t ON u.team_id = t.id
LEFT JOIN departments d ON t.department_id = d.id
LEFT JOIN areas a ON d.area_id = a.id
LEFT JOIN branches b ON a.branch_id = b.id
ORDER BY u.name ASC`

const networkEdgesQuery = `
SELECT sender_id, recipient_id, COUNT(*) AS count
FROM recognitions
GROUP BY sender_id, recipient_id
ORDER BY count DESC, sender_id ASC, recipient_id ASC`

const topRecipientsQuery = `
SELECT r.recipient_id AS user_id, u.name, COUNT(*) AS received
FROM recognitions r
JOIN users u ON r.recipient_id = u.id
GROUP BY r.recipient_id, u.name
ORDER BY received DESC, u.name ASC
LIMIT ?`

func (r *MetricsRepository) UserStats(userID int64) (*metrics.UserStats, error) {
	var stats metrics.UserStats
	if err := r.db.Get(&stats, r.db.Rebind(userStatsQuery), userID, userID, userID, userID); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *MetricsRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Get(&count, `SELECT COUNT(*) FROM users`)
	return count, err
}

func (r *MetricsRepository) CountParticipants() (int64, error) {
	var count int64
	err := r.db.Get(&count, participantsQuery)
	return count, err
}

func (r *MetricsRepository) NetworkNodes() ([]metrics.NetworkNode, error) {
	nodes := make([]metrics.NetworkNode, 0)
	if err := r.db.Select(&nodes, networkNodesQuery); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (r *MetricsRepository) NetworkEdges() ([]metrics.NetworkEdge, error) {
	edges := make([]metrics.NetworkEdge, 0)
	if err := r.db.Select(&edges, networkEdgesQuery); err != nil {
		return nil, err
	}
	return edges, nil
}

func (r *MetricsRepository) CountRecognitions() (int64, error) {
	var count int64
	err := r.db.Get(&count, `SELECT COUNT(*) FROM recognitions`)
	return count, err
}

func (r *MetricsRepository) CountRecognitionsSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Get(&count, r.db.Rebind(`SELECT COUNT(*) FROM recognitions WHERE created_at >= ?`), since)
	return count, err
}

func (r *MetricsRepository) TopRecipients(limit int) ([]metrics.TopRecipient, error) {
	top := make([]metrics.TopRecipient, 0, limit)
	if err := r.db.Select(&top, r.db.Rebind(topRecipientsQuery), limit); err != nil {
		return nil, err
	}
	return top, nil
}
