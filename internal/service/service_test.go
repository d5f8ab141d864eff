package service

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"adboard/internal/config"
	"adboard/internal/database"
	"adboard/internal/models"
	"adboard/internal/repository"
	"adboard/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	pngBytes  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n', 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}
)

type testEnv struct {
	svc       *Service
	db        *sqlx.DB
	mediaRoot string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		DB: config.DB{
			Driver: config.DriverSQLite,
			URL:    "file::memory:?_foreign_keys=on",
		},
		JWTSecretKey:        "test-secret",
		AccessTokenDuration: time.Hour,
		MaxUploadSize:       1 << 20,
	}

	db, err := database.ConnectDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.CloseDB() })

	mediaRoot := t.TempDir()
	rep := repository.NewRepository(db.DB)
	stores := Stores{
		AdImages: storage.NewLocalStorage(filepath.Join(mediaRoot, "ads")),
		Avatars:  storage.NewLocalStorage(filepath.Join(mediaRoot, "avatars")),
	}

	svc := NewService(rep, cfg, stores, zap.NewNop())
	svc.Auth = NewAuthService(rep.User, NewBcryptHasher(bcrypt.MinCost), cfg)

	return &testEnv{svc: svc, db: db.DB, mediaRoot: mediaRoot}
}

func (e *testEnv) register(t *testing.T, username string, role models.Role) *models.Principal {
	t.Helper()

	user, err := e.svc.Auth.Register(context.Background(), RegisterRequest{
		Username:  username,
		Password:  "password1",
		FirstName: "Ivan",
		LastName:  "Petrov",
		Phone:     "+7 (999) 123-45-67",
		Role:      role,
	})
	require.NoError(t, err)

	return &models.Principal{ID: user.ID, Username: user.Username, Role: user.Role}
}

func (e *testEnv) createAd(t *testing.T, owner *models.Principal) *models.Ad {
	t.Helper()

	ad, err := e.svc.Ad.Create(context.Background(), owner, CreateAdRequest{
		Title:       "Bicycle",
		Description: "Almost new city bicycle",
		Price:       15000,
		Image:       Upload{Data: jpegBytes, Filename: "bike.jpg"},
	})
	require.NoError(t, err)

	return ad
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()

	var n int
	require.NoError(t, e.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

// countFiles counts regular files under a media root below the test media dir.
func (e *testEnv) countFiles(t *testing.T, dir string) int {
	t.Helper()

	n := 0
	err := filepath.WalkDir(filepath.Join(e.mediaRoot, dir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0
	}
	require.NoError(t, err)
	return n
}
