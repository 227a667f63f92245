package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/cardbox/cardbox-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user, assigning it a fresh id. A uniqueness
// violation on email yields ErrDuplicateEmail and leaves no record.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	query := `INSERT INTO users (id, name, about, avatar, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.About, user.Avatar, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, name, about, avatar, email, password_hash, created_at
		FROM users WHERE email = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, name, about, avatar, email, password_hash, created_at
		FROM users WHERE id = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves all users, oldest first.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, name, about, avatar, email, password_hash, created_at
		FROM users ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.PasswordHash, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// UpdateProfile sets the user's name and about and returns the updated
// record, or ErrUserNotFound if the user does not exist.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*model.User, error) {
	query := `UPDATE users SET name = ?, about = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, name, about, id); err != nil {
		return nil, err
	}

	// Re-read rather than trusting rows-affected: MySQL reports zero
	// affected rows for a no-change update on an existing row.
	return r.GetByID(ctx, id)
}

// UpdateAvatar sets the user's avatar URL and returns the updated
// record, or ErrUserNotFound if the user does not exist.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error) {
	query := `UPDATE users SET avatar = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, avatar, id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.About, &user.Avatar, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// isDuplicateEntryError checks for a MySQL duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
