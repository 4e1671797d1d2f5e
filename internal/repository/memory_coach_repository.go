package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/utils"
)

// MemoryCoachRepo keeps accounts in process memory for the memory backend
// and for tests.  Accounts are lost on restart.
type MemoryCoachRepo struct {
	mu      sync.Mutex
	nextID  uint64
	byEmail map[string]model.Coach
}

func NewMemoryCoachRepo() *MemoryCoachRepo {
	return &MemoryCoachRepo{byEmail: map[string]model.Coach{}}
}

func (r *MemoryCoachRepo) Create(_ context.Context, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return 0, ErrEmailExists
	}
	r.nextID++
	now := time.Now().UTC()
	r.byEmail[email] = model.Coach{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return r.nextID, nil
}

func (r *MemoryCoachRepo) GetByEmail(_ context.Context, email string) (model.Coach, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.Coach{}, ErrCoachNotFound
	}
	return c, nil
}
