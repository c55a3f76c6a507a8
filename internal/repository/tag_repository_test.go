package repository

import (
	"context"
	"testing"

	"filosofia_go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)
	links := NewTopicTagRepository(db)
	topics := NewTopicRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Práxis", "Niilismo", "Colonialidade"} {
		require.NoError(t, repo.Create(ctx, &model.Tag{Name: model.String(name)}))
	}

	t.Run("List is ordered by name", func(t *testing.T) {
		tags, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, tags, 3)
		assert.Equal(t, "Colonialidade", model.Deref(tags[0].Name))
		assert.Equal(t, "Niilismo", model.Deref(tags[1].Name))
		assert.Equal(t, "Práxis", model.Deref(tags[2].Name))
	})

	t.Run("Duplicate name is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &model.Tag{Name: model.String("Niilismo")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UNIQUE")
	})

	t.Run("ListByTopic and delete linked tag", func(t *testing.T) {
		topic := &model.Topic{Question: model.String("O que é niilismo?")}
		require.NoError(t, topics.Create(ctx, topic))

		tag := &model.Tag{Name: model.String("Nietzsche")}
		require.NoError(t, repo.Create(ctx, tag))
		require.NoError(t, links.Add(ctx, topic.ID, tag.ID))

		got, err := repo.ListByTopic(ctx, topic.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, tag.ID, got[0].ID)
		assert.Equal(t, "Nietzsche", model.Deref(got[0].Name))

		n, err := repo.Delete(ctx, tag.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		got, err = repo.ListByTopic(ctx, topic.ID)
		require.NoError(t, err)
		assert.Empty(t, got)

		_, err = topics.FindByID(ctx, topic.ID)
		assert.NoError(t, err, "topic must survive tag deletion")
	})
}
