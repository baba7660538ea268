package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elysia-api/parking-service/internal/adapter/hash"
	"github.com/elysia-api/parking-service/internal/config"
	"github.com/elysia-api/parking-service/internal/core/domain"
	"github.com/elysia-api/parking-service/internal/core/ports"
	"github.com/elysia-api/parking-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

type noopMetrics struct{}

func (noopMetrics) RecordMetrics(*gin.Context, time.Time) {}

// noopCache always misses so handler tests exercise the repositories.
type noopCache struct{}

func (noopCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (noopCache) Get(context.Context, string) (string, error)              { return "", ports.ErrCacheMiss }
func (noopCache) Delete(context.Context, string) error                     { return nil }

type fakeMotoRepo struct {
	mu     sync.Mutex
	nextID int64
	motos  map[int64]domain.Moto
}

func newFakeMotoRepo() *fakeMotoRepo {
	return &fakeMotoRepo{motos: make(map[int64]domain.Moto)}
}

func (r *fakeMotoRepo) Create(_ context.Context, moto *domain.Moto) (*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *moto
	stored.ID = r.nextID
	r.motos[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *fakeMotoRepo) GetByID(_ context.Context, id int64) (*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	moto, ok := r.motos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := moto
	return &out, nil
}

func (r *fakeMotoRepo) List(_ context.Context, limit, offset int) ([]*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.sorted()
	return pageOf(all, limit, offset), nil
}

func (r *fakeMotoRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.motos), nil
}

func (r *fakeMotoRepo) SearchByPlaca(_ context.Context, placa string) ([]*domain.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := make([]*domain.Moto, 0)
	for _, moto := range r.sorted() {
		if strings.Contains(moto.Placa.String(), placa) {
			matches = append(matches, moto)
		}
	}
	return matches, nil
}

func (r *fakeMotoRepo) Update(_ context.Context, moto *domain.Moto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[moto.ID]; !ok {
		return domain.ErrNotFound
	}
	r.motos[moto.ID] = *moto
	return nil
}

func (r *fakeMotoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.motos, id)
	return nil
}

func (r *fakeMotoRepo) sorted() []*domain.Moto {
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
	return out
}

type fakeVagaRepo struct {
	mu     sync.Mutex
	nextID int64
	vagas  map[int64]domain.Vaga
}

func newFakeVagaRepo() *fakeVagaRepo {
	return &fakeVagaRepo{vagas: make(map[int64]domain.Vaga)}
}

func (r *fakeVagaRepo) conflict(vaga *domain.Vaga) error {
	for _, existing := range r.vagas {
		if existing.ID != vaga.ID && existing.Patio == vaga.Patio && existing.Numero == vaga.Numero {
			return &domain.ConflictError{
				Message: fmt.Sprintf("Já existe a vaga nº %d no pátio '%s'.", vaga.Numero, vaga.Patio),
			}
		}
	}
	return nil
}

func (r *fakeVagaRepo) Create(_ context.Context, vaga *domain.Vaga) (*domain.Vaga, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.conflict(vaga); err != nil {
		return nil, err
	}

	r.nextID++
	stored := *vaga
	stored.ID = r.nextID
	r.vagas[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *fakeVagaRepo) GetByID(_ context.Context, id int64) (*domain.Vaga, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vaga, ok := r.vagas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := vaga
	return &out, nil
}

func (r *fakeVagaRepo) List(_ context.Context, limit, offset int) ([]*domain.Vaga, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pageOf(r.sorted(""), limit, offset), nil
}

func (r *fakeVagaRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vagas), nil
}

func (r *fakeVagaRepo) ListByPatio(_ context.Context, patio string, limit, offset int) ([]*domain.Vaga, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pageOf(r.sorted(patio), limit, offset), nil
}

func (r *fakeVagaRepo) CountByPatio(_ context.Context, patio string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sorted(patio)), nil
}

func (r *fakeVagaRepo) Update(_ context.Context, vaga *domain.Vaga) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vagas[vaga.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.conflict(vaga); err != nil {
		return err
	}
	r.vagas[vaga.ID] = *vaga
	return nil
}

func (r *fakeVagaRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vagas[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.vagas, id)
	return nil
}

func (r *fakeVagaRepo) sorted(patio string) []*domain.Vaga {
	ids := make([]int64, 0, len(r.vagas))
	for id, vaga := range r.vagas {
		if patio != "" && vaga.Patio != patio {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*domain.Vaga, 0, len(ids))
	for _, id := range ids {
		vaga := r.vagas[id]
		out = append(out, &vaga)
	}
	return out
}

type fakeUsuarioRepo struct {
	mu       sync.Mutex
	nextID   int64
	usuarios map[int64]domain.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[int64]domain.Usuario)}
}

func (r *fakeUsuarioRepo) conflict(usuario *domain.Usuario) error {
	for _, existing := range r.usuarios {
		if existing.ID == usuario.ID {
			continue
		}
		if existing.Email == usuario.Email || existing.Cpf == usuario.Cpf {
			return &domain.ConflictError{Message: "Email ou CPF já cadastrado."}
		}
	}
	return nil
}

func (r *fakeUsuarioRepo) Create(_ context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.conflict(usuario); err != nil {
		return nil, err
	}

	r.nextID++
	stored := *usuario
	stored.ID = r.nextID
	r.usuarios[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usuario, ok := r.usuarios[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := usuario
	return &out, nil
}

func (r *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*domain.Usuario, error) {
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

func (r *fakeUsuarioRepo) List(_ context.Context, limit, offset int) ([]*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.usuarios))
	for id := range r.usuarios {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := make([]*domain.Usuario, 0, len(ids))
	for _, id := range ids {
		usuario := r.usuarios[id]
		all = append(all, &usuario)
	}
	return pageOf(all, limit, offset), nil
}

func (r *fakeUsuarioRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.usuarios), nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, usuario *domain.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usuarios[usuario.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.conflict(usuario); err != nil {
		return err
	}
	r.usuarios[usuario.ID] = *usuario
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usuarios[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.usuarios, id)
	return nil
}

func pageOf[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return []*T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// newTestServer wires real services onto in-memory repositories behind the
// full router, so tests cover routing, binding and link generation together.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := noopLogger{}
	metrics := noopMetrics{}
	cache := noopCache{}
	validate := validator.New()
	hasher := hash.NewBcryptHasher(bcrypt.MinCost)

	motoService := services.NewMotoService(newFakeMotoRepo(), logger, validate, cache)
	vagaService := services.NewVagaService(newFakeVagaRepo(), logger, validate, cache)
	usuarioService := services.NewUsuarioService(newFakeUsuarioRepo(), logger, validate, cache, hasher)

	tokenService := NewJWTTokenService("test-secret", time.Hour, logger)

	motoHandler := NewMotoHandler(motoService, logger, metrics)
	vagaHandler := NewVagaHandler(vagaService, logger, metrics)
	usuarioHandler := NewUsuarioHandler(usuarioService, tokenService, logger, metrics)

	cfg := &config.HTTP{Env: "test", AllowedOrigins: "*"}
	router, err := NewRouter(cfg, tokenService, motoHandler, vagaHandler, usuarioHandler, nil)
	require.NoError(t, err)

	return router.Engine()
}

func doRequest(t *testing.T, engine *gin.Engine, method, target string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, set := range headers {
		for key, value := range set {
			req.Header.Set(key, value)
		}
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
