package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	return db
}

func TestPostgres_UserLifecycle(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()
	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db, nil)

	alice := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "h", IsActive: true}
	require.NoError(t, writer.Create(ctx, alice))
	assert.NotZero(t, alice.ID)
	assert.Equal(t, int64(0), alice.Version)

	err := writer.Create(ctx, &models.User{Username: "alice", Email: "other@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	err = writer.Create(ctx, &models.User{Username: "alice2", Email: "alice@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := reader.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, alice.ID, got.ID)

	missing, err := reader.GetByID(ctx, alice.ID+100)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := reader.ExistsByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	got.FirstName = "Alice"
	require.NoError(t, writer.Update(ctx, got))
	assert.Equal(t, int64(1), got.Version)

	// alice still holds version 0
	alice.LastName = "Smith"
	assert.ErrorIs(t, writer.Update(ctx, alice), ErrVersionConflict)
}

func TestPostgres_ConcurrentRegistrationLeavesOneRecord(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()
	writer := NewUserWriteRepository(db, nil)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = writer.Create(ctx, &models.User{
				Username:     "race",
				Email:        fmt.Sprintf("race%d@example.com", i),
				PasswordHash: "h",
				IsActive:     true,
			})
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrUsernameTaken)
	}
	assert.Equal(t, 1, ok)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users WHERE username = 'race'`))
	assert.Equal(t, 1, count)
}

func TestPostgres_ImageLifecycle(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	owner := &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "h", IsActive: true}
	require.NoError(t, NewUserWriteRepository(db, nil).Create(ctx, owner))

	reader := NewImageReadRepository(db)
	writer := NewImageWriteRepository(db, nil)

	imgurID, hash, url := "abc123", "del456", "https://i.imgur.com/abc123.png"
	first := &models.Image{
		ImageName: "Summer_Trip", OriginalFilename: "summer.png",
		ImgurID: &imgurID, ImgurDeleteHash: &hash, ImgurURL: &url,
		FileSize: 10, MimeType: "image/png", Status: models.ImageStatusActive, UserID: owner.ID,
	}
	require.NoError(t, writer.Create(ctx, first))

	path := "/vault/user-bob/images/x.jpg"
	second := &models.Image{
		ImageName: "x.jpg", OriginalFilename: "winter.jpg", DropboxPath: &path,
		FileSize: 20, MimeType: "image/jpeg", Status: models.ImageStatusActive, UserID: owner.ID,
	}
	require.NoError(t, writer.Create(ctx, second))

	both := &models.Image{
		ImageName: "bad", ImgurID: &imgurID, DropboxPath: &path,
		Status: models.ImageStatusActive, UserID: owner.ID,
	}
	assert.Error(t, writer.Create(ctx, both))

	list, err := reader.ListByOwnerAndStatus(ctx, owner.ID, models.ImageStatusActive)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	found, err := reader.SearchByName(ctx, owner.ID, "SUMMER", models.ImageStatusActive)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, first.ID, found[0].ID)

	byImgur, err := reader.GetByImgurIDAndOwner(ctx, imgurID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, byImgur)

	other, err := reader.GetByIDAndOwner(ctx, first.ID, owner.ID+1)
	assert.NoError(t, err)
	assert.Nil(t, other)

	views, err := writer.IncrementViewCount(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	first.Status = models.ImageStatusDeleted
	require.NoError(t, writer.Update(ctx, first))

	count, err := reader.CountByOwnerAndStatus(ctx, owner.ID, models.ImageStatusActive)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
