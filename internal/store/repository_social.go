package store

import "context"

func (s *Store) AreFriends(ctx context.Context, userID, friendID int64) (bool, error) {
	var count int
	err := s.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM friends
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
	`, userID, friendID).Scan(&count)
	return count > 0, err
}

func (s *Store) AddFriend(ctx context.Context, userID, friendID int64) error {
	already, err := s.AreFriends(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if already {
		return ErrDuplicate
	}
	_, err = s.Pool.Exec(ctx, `INSERT INTO friends (user_id, friend_id) VALUES ($1,$2)`, userID, friendID)
	return err
}

// ListFriends returns the other side of every friendship involving
// userID, skipping soft-deleted accounts.
func (s *Store) ListFriends(ctx context.Context, userID int64) ([]FriendInfo, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT u.id, u.username
		FROM friends f
		JOIN users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
		WHERE (f.user_id = $1 OR f.friend_id = $1) AND u.is_deleted = FALSE
		ORDER BY u.username ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []FriendInfo{}
	for rows.Next() {
		var fi FriendInfo
		if err := rows.Scan(&fi.ID, &fi.Username); err != nil {
			return nil, err
		}
		out = append(out, fi)
	}
	return out, rows.Err()
}

// RemoveFriend deletes the friendship and the pair's private messages
// in one transaction.
func (s *Store) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		DELETE FROM friends
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
	`, userID, friendID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	_, err = tx.Exec(ctx, `
		DELETE FROM private_messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	`, userID, friendID)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) AddPrivateMessage(ctx context.Context, senderID, receiverID int64, content string) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO private_messages (id, sender_id, receiver_id, content) VALUES ($1,$2,$3,$4)
	`, NewID(), senderID, receiverID, content)
	return err
}

func (s *Store) ListPrivateMessages(ctx context.Context, userID1, userID2 int64) ([]PrivateMessage, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT pm.id, pm.sender_id, pm.receiver_id, pm.content, pm.sent_at
		FROM private_messages pm
		JOIN users u1 ON u1.id = $1 AND u1.is_deleted = FALSE
		JOIN users u2 ON u2.id = $2 AND u2.is_deleted = FALSE
		WHERE (pm.sender_id = $1 AND pm.receiver_id = $2)
		   OR (pm.sender_id = $2 AND pm.receiver_id = $1)
		ORDER BY pm.sent_at ASC
	`, userID1, userID2)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []PrivateMessage{}
	for rows.Next() {
		var m PrivateMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) FriendRequestExists(ctx context.Context, senderID, receiverID int64) (bool, error) {
	var count int
	err := s.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM friend_requests
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	`, senderID, receiverID).Scan(&count)
	return count > 0, err
}

func (s *Store) CreateFriendRequest(ctx context.Context, senderID, receiverID int64) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO friend_requests (id, sender_id, receiver_id) VALUES ($1,$2,$3)
	`, NewID(), senderID, receiverID)
	return err
}

func (s *Store) DeleteFriendRequest(ctx context.Context, senderID, receiverID int64) error {
	_, err := s.Pool.Exec(ctx, `
		DELETE FROM friend_requests WHERE sender_id = $1 AND receiver_id = $2
	`, senderID, receiverID)
	return err
}

// ListFriendRequests returns pending requests addressed to userID with
// the sender's display fields.
func (s *Store) ListFriendRequests(ctx context.Context, userID int64) ([]FriendRequest, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT fr.sender_id, u.username, u.avatar
		FROM friend_requests fr
		JOIN users u ON fr.sender_id = u.id
		WHERE fr.receiver_id = $1
		ORDER BY fr.id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []FriendRequest{}
	for rows.Next() {
		var fr FriendRequest
		if err := rows.Scan(&fr.SenderID, &fr.Username, &fr.Avatar); err != nil {
			return nil, err
		}
		out = append(out, fr)
	}
	return out, rows.Err()
}
