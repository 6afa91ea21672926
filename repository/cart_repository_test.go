package repository_test

import (
	"context"
	"regexp"
	"testing"

	"course-marketplace/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMarkItemsSold_UpdatesInCartRows(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	changed, err := repo.MarkItemsSold(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), changed)
}

func TestMarkItemsSold_NothingLeftInCart(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cart_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	changed, err := repo.MarkItemsSold(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}

func TestRemoveItem_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormCartRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cart_items"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.RemoveItem(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
