package main

import (
	"gorm.io/gen"

	"tuition/internal/infra/persistence/model"
)

// Generates type-safe query helpers for every persisted model.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
