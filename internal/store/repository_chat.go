package store

import "context"

func (s *Store) AddGlobalMessage(ctx context.Context, senderID int64, content string) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO global_chat (id, sender_id, content) VALUES ($1,$2,$3)
	`, NewID(), senderID, content)
	return err
}

// ListGlobalMessages returns the chat backlog with sender display
// fields, oldest first.
func (s *Store) ListGlobalMessages(ctx context.Context) ([]GlobalMessage, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT g.sender_id, COALESCE(u.username, ''), COALESCE(u.avatar, 0), g.content
		FROM global_chat g
		LEFT JOIN users u ON g.sender_id = u.id
		ORDER BY g.sent_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []GlobalMessage{}
	for rows.Next() {
		var m GlobalMessage
		if err := rows.Scan(&m.SenderID, &m.Username, &m.Avatar, &m.Content); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
