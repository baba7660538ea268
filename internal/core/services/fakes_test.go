package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"
)

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

// memCache is a map-backed CachePort so service tests can observe the
// cache-aside behavior without Redis.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return value, nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

type memMotoRepo struct {
	mu           sync.Mutex
	nextID       int64
	motos        map[int64]domain.Moto
	lastFragment string
}

func newMemMotoRepo() *memMotoRepo {
	return &memMotoRepo{motos: make(map[int64]domain.Moto)}
}

func (r *memMotoRepo) Create(_ context.Context, moto *domain.Moto) (*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *moto
	stored.ID = r.nextID
	r.motos[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *memMotoRepo) GetByID(_ context.Context, id int64) (*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	moto, ok := r.motos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := moto
	return &out, nil
}

func (r *memMotoRepo) List(_ context.Context, limit, offset int) ([]*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.motos))
	for id := range r.motos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*domain.Moto, 0, len(ids))
	for _, id := range ids {
		moto := r.motos[id]
		out = append(out, &moto)
	}
	if offset >= len(out) {
		return []*domain.Moto{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *memMotoRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.motos), nil
}

func (r *memMotoRepo) SearchByPlaca(_ context.Context, placa string) ([]*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFragment = placa
	return []*domain.Moto{}, nil
}

func (r *memMotoRepo) Update(_ context.Context, moto *domain.Moto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[moto.ID]; !ok {
		return domain.ErrNotFound
	}
	r.motos[moto.ID] = *moto
	return nil
}

func (r *memMotoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.motos, id)
	return nil
}

// set overwrites a record directly, bypassing the service, to make stale
// cache entries observable.
func (r *memMotoRepo) set(moto domain.Moto) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.motos[moto.ID] = moto
}

type memUsuarioRepo struct {
	mu       sync.Mutex
	nextID   int64
	usuarios map[int64]domain.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{usuarios: make(map[int64]domain.Usuario)}
}

func (r *memUsuarioRepo) Create(_ context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *usuario
	stored.ID = r.nextID
	r.usuarios[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *memUsuarioRepo) GetByID(_ context.Context, id int64) (*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usuario, ok := r.usuarios[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := usuario
	return &out, nil
}

func (r *memUsuarioRepo) GetByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, usuario := range r.usuarios {
		if usuario.Email == email {
			out := usuario
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUsuarioRepo) List(_ context.Context, limit, offset int) ([]*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Usuario, 0, len(r.usuarios))
	for id := range r.usuarios {
		usuario := r.usuarios[id]
		out = append(out, &usuario)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return []*domain.Usuario{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *memUsuarioRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.usuarios), nil
}

func (r *memUsuarioRepo) Update(_ context.Context, usuario *domain.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usuarios[usuario.ID]; !ok {
		return domain.ErrNotFound
	}
	r.usuarios[usuario.ID] = *usuario
	return nil
}

func (r *memUsuarioRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usuarios[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.usuarios, id)
	return nil
}
