package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, kind, login, password_hash, name, surname, branch_id, roles, email, address, position`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (kind, login, password_hash, name, surname, branch_id, roles, email, address, position)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return q(ctx, r.db).QueryRowContext(ctx, query,
		user.Kind, user.Login, user.PasswordHash, user.Name, user.Surname,
		user.BranchID, pq.Array(user.Roles), user.Email, user.Address, user.Position).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := q(ctx, r.db).QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	row := q(ctx, r.db).QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE login = $1`, login)
	return scanUser(row)
}

func (r *userRepository) ListByKind(ctx context.Context, kind domain.UserKind) ([]domain.User, error) {
	rows, err := q(ctx, r.db).QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE kind = $1 ORDER BY id`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Kind, &u.Login, &u.PasswordHash, &u.Name, &u.Surname,
			&u.BranchID, pq.Array(&u.Roles), &u.Email, &u.Address, &u.Position); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET login=$1, password_hash=$2, name=$3, surname=$4, branch_id=$5,
	          roles=$6, email=$7, address=$8, position=$9 WHERE id=$10`
	res, err := q(ctx, r.db).ExecContext(ctx, query,
		user.Login, user.PasswordHash, user.Name, user.Surname, user.BranchID,
		pq.Array(user.Roles), user.Email, user.Address, user.Position, user.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := q(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Kind, &u.Login, &u.PasswordHash, &u.Name, &u.Surname,
		&u.BranchID, pq.Array(&u.Roles), &u.Email, &u.Address, &u.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
