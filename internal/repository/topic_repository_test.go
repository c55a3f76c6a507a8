package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"filosofia_go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTopicRepository(t *testing.T) {
	db := setupTestDB(t)
	categories := NewCategoryRepository(db)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	stoics := &model.Category{Name: model.String("Estoicismo")}
	cynics := &model.Category{Name: model.String("Cinismo")}
	require.NoError(t, categories.Create(ctx, stoics))
	require.NoError(t, categories.Create(ctx, cynics))

	virtue := &model.Topic{CategoryID: model.Int64(stoics.ID), Question: model.String("O que é virtude?"), Body: model.String("...")}
	dogs := &model.Topic{CategoryID: model.Int64(cynics.ID), Question: model.String("Por que cães?")}
	loose := &model.Topic{Question: model.String("Sem categoria")}
	for _, topic := range []*model.Topic{virtue, dogs, loose} {
		require.NoError(t, repo.Create(ctx, topic))
		require.NotZero(t, topic.ID)
	}

	t.Run("List without filter", func(t *testing.T) {
		topics, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, topics, 3)
	})

	t.Run("List filters by exact category", func(t *testing.T) {
		topics, err := repo.List(ctx, model.Int64(stoics.ID))
		require.NoError(t, err)
		require.Len(t, topics, 1)
		assert.Equal(t, virtue.ID, topics[0].ID)

		topics, err = repo.List(ctx, model.Int64(12345))
		require.NoError(t, err)
		assert.NotNil(t, topics)
		assert.Empty(t, topics)
	})

	t.Run("FindByID fills created_at", func(t *testing.T) {
		got, err := repo.FindByID(ctx, virtue.ID)
		require.NoError(t, err)
		assert.Equal(t, "O que é virtude?", model.Deref(got.Question))
		require.NotNil(t, got.CreatedAt)
		assert.False(t, got.CreatedAt.IsZero())

		// 与 SQLite 保存的文本格式一致，而不是 RFC3339
		out, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Regexp(t, `"created_at":"\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}"`, string(out))
		require.NotNil(t, got.CategoryID)
		assert.Equal(t, stoics.ID, *got.CategoryID)
	})

	t.Run("FindByID missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 424242)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("Update can clear category", func(t *testing.T) {
		n, err := repo.Update(ctx, &model.Topic{ID: dogs.ID, Question: model.String("Diógenes")})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		got, err := repo.FindByID(ctx, dogs.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
		assert.Equal(t, "Diógenes", model.Deref(got.Question))
	})

	t.Run("Create without question fails", func(t *testing.T) {
		err := repo.Create(ctx, &model.Topic{Body: model.String("corpo")})
		assert.Error(t, err)
	})

	t.Run("Deleting category leaves topic orphaned", func(t *testing.T) {
		_, err := categories.Delete(ctx, stoics.ID)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, virtue.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CategoryID)
		assert.Equal(t, stoics.ID, *got.CategoryID)
	})

	t.Run("Delete", func(t *testing.T) {
		n, err := repo.Delete(ctx, loose.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
}
