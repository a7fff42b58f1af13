package articles

import (
	"context"
	"testing"

	"focode-importer/feature/articles/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestFindBySlug_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "slug", "title", "html", "image", "summary", "date", "category", "published"}).
		AddRow(7, "mon-article", "Mon article", "<p>corps</p>", "/img/a.jpg", "résumé", "01 décembre 2025", "magazine", true)

	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE slug = \\?").
		WithArgs("mon-article", 1).
		WillReturnRows(rows)

	article, err := store.FindBySlug(context.Background(), "mon-article")
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, uint(7), article.ID)
	assert.Equal(t, "Mon article", article.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindBySlug_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE slug = \\?").
		WithArgs("inconnu", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	article, err := store.FindBySlug(context.Background(), "inconnu")
	require.NoError(t, err)
	assert.Nil(t, article)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `articles`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	article := &models.Article{
		Slug:      "nouveau",
		Title:     "Nouveau",
		HTML:      "<p>corps</p>",
		Image:     "/img/a.jpg",
		Date:      "Archive",
		Published: true,
	}
	require.NoError(t, store.Create(context.Background(), article))
	assert.Equal(t, uint(1), article.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateSlug(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `articles`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.Create(context.Background(), &models.Article{Slug: "dup"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"dup"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `articles` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	article := &models.Article{
		ID:    7,
		Slug:  "mon-article",
		Title: "Titre révisé",
	}
	require.NoError(t, store.Update(context.Background(), article))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSystemUser_Existing(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "username", "display_name"}).
		AddRow(1, models.SystemUsername, models.SystemDisplayName)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(rows)

	user, err := store.EnsureSystemUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, models.SystemUsername, user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSystemUser_CreatedWhenAbsent(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user, err := store.EnsureSystemUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
