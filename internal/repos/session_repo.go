package repos

import "github.com/jmoiron/sqlx"

type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Bind(sid string) error {
	_, err := r.db.Exec(`INSERT INTO sessions(id,last_seen)
                          VALUES(?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET last_seen=CURRENT_TIMESTAMP`, sid)
	return err
}

func (r *SessionRepo) Exists(sid string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM sessions WHERE id = ?`, sid); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SessionRepo) Unbind(sid string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, sid)
	return err
}
