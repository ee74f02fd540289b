package repository

import (
	"context"
	"sync"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
)

// In-memory implementations used by tests and local development when no
// DynamoDB endpoint is configured.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemoryUserRepository returns a map-backed UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]domain.User)}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	user.Email = domain.NormalizeEmail(user.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Email] = *user
	return nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[domain.NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	key := domain.NormalizeEmail(email)
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[key]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = passwordHash
	r.users[key] = user
	return nil
}

func (r *memoryUserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemoryOrderRepository returns a slice-backed OrderRepository.
func NewMemoryOrderRepository() OrderRepository {
	return &memoryOrderRepository{}
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	fillOrderDefaults(order)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memoryOrderRepository) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	key := domain.NormalizeEmail(email)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0)
	for _, o := range r.orders {
		if o.UserEmail == key {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memoryOrderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

type memoryCodeRepository struct {
	mu    sync.RWMutex
	codes map[string]domain.VerificationCode
}

// NewMemoryCodeRepository returns a map-backed CodeRepository.
func NewMemoryCodeRepository() CodeRepository {
	return &memoryCodeRepository{codes: make(map[string]domain.VerificationCode)}
}

func (r *memoryCodeRepository) Save(ctx context.Context, code *domain.VerificationCode) error {
	code.Email = domain.NormalizeEmail(code.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[code.Email] = *code
	return nil
}

func (r *memoryCodeRepository) Get(ctx context.Context, email string) (*domain.VerificationCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	code, ok := r.codes[domain.NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &code, nil
}

func (r *memoryCodeRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, domain.NormalizeEmail(email))
	return nil
}

func (r *memoryCodeRepository) List(ctx context.Context) ([]domain.VerificationCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]domain.VerificationCode, 0, len(r.codes))
	for _, c := range r.codes {
		codes = append(codes, c)
	}
	return codes, nil
}
