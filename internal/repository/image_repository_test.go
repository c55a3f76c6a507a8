package repository

import (
	"context"
	"testing"

	"filosofia_go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRepository_ListByTopic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewImageRepository(db)
	ctx := context.Background()

	images, err := repo.ListByTopic(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)

	require.NoError(t, db.Exec(
		"INSERT INTO imagens (topico_id, caminho, descricao, ordem) VALUES (?, ?, ?, ?)",
		1, "/img/platao.png", "Platão", 1).Error)

	images, err = repo.ListByTopic(ctx, 1)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "/img/platao.png", images[0].Path)
	assert.Equal(t, model.Int64(1), images[0].Order)
}
