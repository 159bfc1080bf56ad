package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

const userColumns = `id, username, email, password_hash, first_name, last_name,
	phone_number, is_active, version, created_at, updated_at`

// UserReadRepository reads user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername returns the user or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername reports whether the username is taken.
func (r *UserReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
}

// ExistsByEmail reports whether the email is taken.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *UserReadRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, arg)
	logQuery(query, []any{arg}, exists, err)
	return exists, err
}

// UserWriteRepository writes user records, joining the request transaction when one is bound.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts user and fills its generated columns.
// Unique violations surface as ErrUsernameTaken or ErrEmailTaken.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, phone_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, version, created_at, updated_at
	`
	args := []any{user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.PhoneNumber, user.IsActive}

	var row struct {
		ID        int64        `db:"id"`
		Version   int64        `db:"version"`
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	logQuery(query, []any{user.Username, user.Email}, row.ID, err)

	if err != nil {
		return mapUniqueViolation(err)
	}
	user.ID = row.ID
	user.Version = row.Version
	user.CreatedAt = row.CreatedAt.Time
	user.UpdatedAt = row.UpdatedAt.Time
	return nil
}

// Update saves the mutable columns if user.Version still matches the stored row,
// then bumps the version. A mismatch returns ErrVersionConflict.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, phone_number = $3, is_active = $4,
		    version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6
		RETURNING version, updated_at
	`
	args := []any{user.FirstName, user.LastName, user.PhoneNumber, user.IsActive, user.ID, user.Version}

	var row struct {
		Version   int64        `db:"version"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	logQuery(query, args, row.Version, err)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrVersionConflict
	}
	if err != nil {
		return err
	}
	user.Version = row.Version
	user.UpdatedAt = row.UpdatedAt.Time
	return nil
}
