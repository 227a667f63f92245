package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/cardbox/cardbox-go/internal/model"
)

func newMockDB(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock
}

func userColumns() []string {
	return []string{"id", "name", "about", "avatar", "email", "password_hash", "created_at"}
}

func TestUserCreate(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(sqlmock.AnyArg(), "Ann", "Explorer", "https://example.com/a.png",
			"ann@example.com", "hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user := &model.User{
		Name:         "Ann",
		About:        "Explorer",
		Avatar:       "https://example.com/a.png",
		Email:        "ann@example.com",
		PasswordHash: "hash",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := repo.Create(context.Background(), &model.User{Email: "taken@example.com"})
	if err != ErrDuplicateEmail {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, about, avatar, email, password_hash, created_at`)).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	if err != ErrUserNotFound {
		t.Errorf("GetByEmail() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserGetByID(t *testing.T) {
	repo, mock := newMockDB(t)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, about, avatar, email, password_hash, created_at`)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", "Ann", "Explorer", "https://example.com/a.png",
				"ann@example.com", "hash", created))

	user, err := repo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if user.Email != "ann@example.com" {
		t.Errorf("GetByID() email = %q, want %q", user.Email, "ann@example.com")
	}
}

func TestUserUpdateProfileMissingUser(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = ?, about = ?`)).
		WithArgs("Ann", "Diver", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, about, avatar, email, password_hash, created_at`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.UpdateProfile(context.Background(), "ghost", "Ann", "Diver")
	if err != ErrUserNotFound {
		t.Errorf("UpdateProfile() error = %v, want ErrUserNotFound", err)
	}
}
