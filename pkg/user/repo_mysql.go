package user

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

func (repo *UserRepoSQL) GetByID(id int64) (*User, error) {
	return repo.getBy("id = ?", id)
}

func (repo *UserRepoSQL) GetByExternalID(externalID string) (*User, error) {
	return repo.getBy("external_id = ?", externalID)
}

func (repo *UserRepoSQL) GetByUsername(username string) (*User, error) {
	return repo.getBy("username = ?", username)
}

func (repo *UserRepoSQL) getBy(cond string, arg interface{}) (*User, error) {
	query := "SELECT `id`, `external_id`, `username`, `email`, `img` FROM users WHERE " + cond
	r := repo.db.QueryRow(query, arg)

	u := User{}
	err := r.Scan(&u.ID, &u.ExternalID, &u.Username, &u.Email, &u.Img)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Upsert creates or refreshes a provider-synced profile, keyed by the
// provider's user id, and returns the local id.
func (repo *UserRepoSQL) Upsert(u *User) (int64, error) {
	query := "INSERT INTO users (`external_id`, `username`, `email`, `img`) VALUES (?, ?, ?, ?) " +
		"ON DUPLICATE KEY UPDATE `username` = VALUES(`username`), `email` = VALUES(`email`), `img` = VALUES(`img`)"
	_, err := repo.db.Exec(query, u.ExternalID, u.Username, u.Email, u.Img)
	if err != nil {
		return 0, err
	}

	stored, err := repo.GetByExternalID(u.ExternalID)
	if err != nil {
		return 0, err
	}
	if stored == nil {
		return 0, sql.ErrNoRows
	}

	u.ID = stored.ID
	return stored.ID, nil
}

func (repo *UserRepoSQL) DeleteByExternalID(externalID string) (bool, error) {
	r, err := repo.db.Exec("DELETE FROM users WHERE external_id = ?", externalID)
	if err != nil {
		return false, err
	}

	affected, err := r.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (repo *UserRepoSQL) SavedPostIDs(userID int64) ([]string, error) {
	rows, err := repo.db.Query("SELECT `post_id` FROM saved_posts WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ToggleSaved flips a post's membership in the user's saved set and
// reports the new state. The unique (user_id, post_id) pair makes the
// insert the atomic decision point, same idea as the view ledger.
func (repo *UserRepoSQL) ToggleSaved(userID int64, postID string) (bool, error) {
	_, err := repo.db.Exec("INSERT INTO saved_posts (`user_id`, `post_id`) VALUES (?, ?)", userID, postID)
	if err == nil {
		return true, nil
	}

	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlDuplicateEntry {
		return false, err
	}

	_, err = repo.db.Exec("DELETE FROM saved_posts WHERE user_id = ? AND post_id = ?", userID, postID)
	if err != nil {
		return false, err
	}

	return false, nil
}
