//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/inventory_search/internal/domain"
	pgrepo "github.com/Gunvolt24/inventory_search/internal/repo/postgres"
	"github.com/Gunvolt24/inventory_search/internal/testutil"
)

// 1) Сохранение и получение позиции со всеми партиями
func TestRepo_SaveAndFind_TC(t *testing.T) {
	t.Parallel()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()

	// миграции
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	// короткий контекст — на сами БД-операции
	ctxTest, cancelTest := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelTest()

	pool, err := pgxpool.New(ctxTest, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewItemRepository(pool)

	item := testutil.MakeItem(testutil.WithLots(2))
	require.NoError(t, repo.Save(ctxTest, &item))

	got, err := repo.FindByPartNumber(ctxTest, item.PartNumber)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, item.PartNumber, got[0].PartNumber)
	require.Equal(t, item.Branch, got[0].Branch)
	require.Len(t, got[0].Lots, 2)
}

// 2) Повторный Save — апдейт базовых полей и полная замена партий
func TestRepo_Save_UpsertAndLotsReplace_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewItemRepository(pool)

	// 1-й Save: позиция с 3 партиями
	item := testutil.MakeItem(testutil.WithLots(3))
	require.NoError(t, repo.Save(ctx, &item))

	// 2-й Save: меняем описание и количество, заменяем партии на 1 шт
	item.Description = "Updated description"
	item.AvailableQty = 99
	item.Lots = []domain.LotInfo{{LotNumber: "LOT-ONLY", Qty: 99}}
	require.NoError(t, repo.Save(ctx, &item))

	got, err := repo.FindByPartNumber(ctx, item.PartNumber)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.Equal(t, "Updated description", got[0].Description)
	require.Equal(t, 99, got[0].AvailableQty)
	require.Len(t, got[0].Lots, 1)
	require.Equal(t, "LOT-ONLY", got[0].Lots[0].LotNumber)
}

// 3) NULL-колонки: позиция без опциональных полей читается как nil
func TestRepo_Find_AllowsMissingOptional_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewItemRepository(pool)

	item := testutil.MakeItem(testutil.WithoutOptionalFields())
	require.NoError(t, repo.Save(ctx, &item))

	got, err := repo.FindByPartNumber(ctx, item.PartNumber)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Nil(t, got[0].LeadTimeDays)
	require.Nil(t, got[0].LastPurchaseDate)
	require.Empty(t, got[0].Lots)
}

// 4) FindByPartNumber — все филиалы артикула, регистр не важен
func TestRepo_FindByPartNumber_AllBranchesCaseInsensitive_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewItemRepository(pool)

	pn := "BOLT-" + testutil.UniqSuffix()
	for _, branch := range []string{"A", "B", "C"} {
		item := testutil.MakeItem(testutil.WithPartNumber(pn), testutil.WithBranch(branch))
		require.NoError(t, repo.Save(ctx, &item))
	}
	// шум другого артикула
	noise := testutil.MakeItem()
	require.NoError(t, repo.Save(ctx, &noise))

	got, err := repo.FindByPartNumber(ctx, pn)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Тот же артикул в другом регистре
	gotLower, err := repo.FindByPartNumber(ctx, "bolt-"+pn[len("BOLT-"):])
	require.NoError(t, err)
	require.Len(t, gotLower, 3)

	// Неизвестный артикул — пустой срез, не ошибка
	none, err := repo.FindByPartNumber(ctx, "GHOST-PART")
	require.NoError(t, err)
	require.Empty(t, none)
}

// 5) GetAll — полный набор с партиями
func TestRepo_GetAll_ReturnsFullSet_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewItemRepository(pool)

	for i := 0; i < 4; i++ {
		item := testutil.MakeItem(testutil.WithLots(1))
		require.NoError(t, repo.Save(ctx, &item))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, item := range all {
		require.NotEmpty(t, item.PartNumber)
		require.NotEmpty(t, item.Lots)
	}
}

// 6) Save — ошибки валидации входа (nil / пустые обязательные поля)
func TestRepo_Save_ValidationErrors_TC(t *testing.T) {
	t.Parallel()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	defer pool.Close()

	repo := pgrepo.NewItemRepository(pool)

	// nil
	require.Error(t, repo.Save(ctx, nil))

	// пустой part_number
	i1 := testutil.MakeItem()
	i1.PartNumber = ""
	require.Error(t, repo.Save(ctx, &i1))

	// пустой branch
	i2 := testutil.MakeItem()
	i2.Branch = ""
	require.Error(t, repo.Save(ctx, &i2))
}
