package database

import (
	"filosofia_go/internal/model"
	"filosofia_go/pkg/log"

	"gorm.io/gorm"
)

// SeedVersion 是演示数据在 schema_versions 中的版本号。
const SeedVersion = 100

// SeedMigrations 只由显式的 seed 命令执行，服务启动时不会运行。
var SeedMigrations = []Migration{
	{Version: SeedVersion, Name: "seed_demo_catalog", Up: seedDemoCatalog},
}

type seedCategory struct {
	name        string
	description string
}

var demoCategories = []seedCategory{
	{"Epistemicídio e transmodernidade", "Filosofia antiga e idealismo."},
	{"Pré-socráticos", "Filosofia antiga e idealismo."},
	{"Sócrates", "Filosofia antiga e idealismo."},
	{"Platão", "Idealismo objetivo."},
	{"Aristóteles", "Práxis e poiese, potência e ato, escravidão natural."},
	{"Cristianismo", "Tomismo. Sacrifício."},
	{"Modernidade", "Razão e modernidade."},
	{"Marxismo e teoria crítica", "Marx, marxismos e teorias críticas."},
	{"Nietzsche", "Niilismo e modernidade."},
}

var demoTags = []string{
	"Epistemicídio", "Transmodernidade", "Sueli Carneiro", "Boaventura de Sousa Santos",
	"Enrique Dussel", "Martin Heidegger", "Colonialidade", "Modernidade",
	"Escravidão", "Práxis", "Poiese", "Niilismo",
}

// demoTopics 通过下标引用 demoCategories 和 demoTags，ID 在插入后取得。
var demoTopics = []struct {
	category int
	tag      int
	question string
	body     string
}{
	{0, 2, "O que é o Mundo das Ideias?", "A teoria de que a realidade não material é a mais fundamental."},
	{1, 0, "Qual a definição de virtude?", "Virtude é o justo meio entre dois vícios."},
	{2, 3, "O que é patriarcado?", "Sistema social em que homens detêm o poder primário."},
	{3, 4, "O que é a mais-valia?", "A diferença entre o valor produzido pelo trabalho e o salário pago."},
}

func seedDemoCatalog(tx *gorm.DB) error {
	categoryIDs := make([]int64, len(demoCategories))
	for i, c := range demoCategories {
		row := &model.Category{Name: model.String(c.name), Description: model.String(c.description)}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		categoryIDs[i] = row.ID
	}

	tagIDs := make([]int64, len(demoTags))
	for i, name := range demoTags {
		row := &model.Tag{Name: model.String(name)}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		tagIDs[i] = row.ID
	}

	for _, t := range demoTopics {
		row := &model.Topic{
			CategoryID: model.Int64(categoryIDs[t.category]),
			Question:   model.String(t.question),
			Body:       model.String(t.body),
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		link := &model.TopicTag{TopicID: row.ID, TagID: tagIDs[t.tag]}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}

// RunSeed 先确保表结构存在，再写入演示数据。演示数据只会写入一次。
func RunSeed(db *gorm.DB) (bool, error) {
	if err := RunMigrate(db); err != nil {
		return false, err
	}
	ran, err := Apply(db, SeedMigrations)
	if err != nil {
		return false, err
	}
	if len(ran) == 0 {
		log.Info("Demo catalog already seeded, skipping")
		return false, nil
	}
	log.Infow("Demo catalog seeded",
		"categories", len(demoCategories), "tags", len(demoTags), "topics", len(demoTopics))
	return true, nil
}
