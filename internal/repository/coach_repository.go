package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/utils"
)

// CoachRepo stores login accounts in the 'coaches' table.
type CoachRepo struct{ DB *sql.DB }

func NewCoachRepo(db *sql.DB) *CoachRepo { return &CoachRepo{DB: db} }

const (
	insertCoachSQL = "INSERT INTO coaches (email, password_hash, role) VALUES (?,?,?)"
	selectCoachSQL = "SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM coaches"
)

const mysqlDuplicateEntry = 1062

// Create inserts an account and returns its ID.
func (r *CoachRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx, insertCoachSQL, email, hash, role)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an account by normalized email.
func (r *CoachRepo) GetByEmail(ctx context.Context, email string) (model.Coach, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx, selectCoachSQL+" WHERE email=? LIMIT 1", email))
}

// GetByID fetches an account by id.
func (r *CoachRepo) GetByID(ctx context.Context, id uint64) (model.Coach, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx, selectCoachSQL+" WHERE id=? LIMIT 1", id))
}

func (r *CoachRepo) scanOne(row *sql.Row) (model.Coach, error) {
	var c model.Coach
	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Role, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Coach{}, ErrCoachNotFound
	}
	return c, err
}
