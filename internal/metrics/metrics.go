package metrics

// Everything here is derived on demand from the ledger; nothing is stored.

// UserStats summarizes one user's recognition activity.
type UserStats struct {
	UserID         int64 `json:"user_id"`
	Received       int64 `json:"received" db:"received"`
	Sent           int64 `json:"sent" db:"sent"`
	DistinctValues int64 `json:"distinct_values" db:"distinct_values"`
	TeamColleagues int64 `json:"team_colleagues" db:"team_colleagues"`
}

// Participation is the share of users who appear in the ledger as sender or
// recipient, as a rounded percentage.
type Participation struct {
	TotalUsers   int64 `json:"total_users"`
	Participants int64 `json:"participants"`
	Rate         int   `json:"rate"`
}

// NetworkNode is a user in the recognition graph.
type NetworkNode struct {
	UserID     int64   `json:"user_id" db:"user_id"`
	Name       string  `json:"name" db:"name"`
	Team       *string `json:"team,omitempty" db:"team"`
	Department *string `json:"department,omitempty" db:"department"`
	Area       *string `json:"area,omitempty" db:"area"`
	Branch     *string `json:"branch,omitempty" db:"branch"`
	Sent       int64   `json:"sent" db:"sent"`
	Received   int64   `json:"received" db:"received"`
}

// NetworkEdge is a directed sender→recipient pair with its recognition count.
type NetworkEdge struct {
	SenderID    int64 `json:"sender_id" db:"sender_id"`
	RecipientID int64 `json:"recipient_id" db:"recipient_id"`
	Count       int64 `json:"count" db:"count"`
}

// Network is the full recognition graph.
type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// TopRecipient is one row of the summary leaderboard.
type TopRecipient struct {
	UserID   int64  `json:"user_id" db:"user_id"`
	Name     string `json:"name" db:"name"`
	Received int64  `json:"received" db:"received"`
}

// Summary is the dashboard headline block.
type Summary struct {
	TotalRecognitions int64          `json:"total_recognitions"`
	ThisMonth         int64          `json:"this_month"`
	TopRecipients     []TopRecipient `json:"top_recipients"`
}
